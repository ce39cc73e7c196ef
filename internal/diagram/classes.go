package diagram

import (
	"strings"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/mermaid"
)

// classRule pairs lowercase substrings with the style class a matching
// node receives. Rules run in order, first hit wins, so specific
// families must precede broader ones: an aws_db_instance is a database,
// not generic compute.
type classRule struct {
	needles []string
	class   string
}

func matchClass(rules []classRule, subject string) string {
	subject = strings.ToLower(subject)
	for _, rule := range rules {
		for _, needle := range rule.needles {
			if strings.Contains(subject, needle) {
				return rule.class
			}
		}
	}
	return ""
}

var imageRules = []classRule{
	{[]string{"nginx", "apache", "httpd", "caddy", "traefik", "haproxy"}, mermaid.ClassWeb},
	{[]string{"postgres", "mysql", "mariadb", "mongo", "cockroach", "cassandra"}, mermaid.ClassDatabase},
	{[]string{"redis", "memcached", "keydb"}, mermaid.ClassCache},
	{[]string{"rabbitmq", "kafka", "nats", "activemq", "mosquitto"}, mermaid.ClassQueue},
	{[]string{"vault"}, mermaid.ClassSecret},
	{[]string{"minio"}, mermaid.ClassStorage},
	{[]string{"node", "python", "golang", "openjdk", "php", "ruby", "dotnet"}, mermaid.ClassCompute},
}

// classForImage picks a style class from a container image reference,
// or "" when no family matches.
func classForImage(image string) string {
	return matchClass(imageRules, image)
}

var typeRules = []classRule{
	{[]string{"db", "database", "sql", "rds", "dynamo", "cosmos", "documentdb"}, mermaid.ClassDatabase},
	{[]string{"cache", "redis", "memcache"}, mermaid.ClassCache},
	{[]string{"queue", "topic", "sqs", "sns", "kafka", "pubsub", "eventhub"}, mermaid.ClassQueue},
	{[]string{"s3", "bucket", "storage", "disk", "blob", "cos", "efs", "filesystem"}, mermaid.ClassStorage},
	{[]string{"vpc", "subnet", "network", "security_group", "securitygroup", "firewall",
		"load_balancer", "loadbalancer", "lb", "gateway", "route", "dns",
		"floating_ip", "public_ip", "eip", "cdn"}, mermaid.ClassNetwork},
	{[]string{"instance", "vm", "virtualmachine", "virtual_machine", "compute",
		"function", "lambda", "container", "cluster", "node_pool"}, mermaid.ClassCompute},
	{[]string{"secret", "key_vault", "keyvault", "kms"}, mermaid.ClassSecret},
	{[]string{"config", "parameter", "ssm"}, mermaid.ClassConfig},
	{[]string{"site", "webapp", "app_service"}, mermaid.ClassWeb},
}

// classForType picks a style class from a resource type such as
// "aws_db_instance" or "Microsoft.Network/virtualNetworks".
func classForType(resourceType string) string {
	return matchClass(typeRules, resourceType)
}
