package domain

// Format identifies the infrastructure-as-code dialect of a document.
type Format string

// Supported formats, plus FormatUnknown for anything the classifier
// cannot place. The string values double as wire identifiers in the
// HTTP and MCP adapters, so they must stay stable.
const (
	FormatDockerCompose  Format = "docker-compose"
	FormatKubernetes     Format = "kubernetes"
	FormatTerraform      Format = "terraform"
	FormatCloudFormation Format = "cloudformation"
	FormatAzureARM       Format = "azure-arm"
	FormatIBMCloud       Format = "ibm-cloud"
	FormatUnknown        Format = "unknown"
)

// AllFormats lists the supported formats in a stable order.
var AllFormats = []Format{
	FormatDockerCompose,
	FormatKubernetes,
	FormatTerraform,
	FormatCloudFormation,
	FormatAzureARM,
	FormatIBMCloud,
}

// Known reports whether f is one of the supported formats.
func (f Format) Known() bool {
	for _, known := range AllFormats {
		if f == known {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable name used in reports and tool
// listings.
func (f Format) DisplayName() string {
	switch f {
	case FormatDockerCompose:
		return "Docker Compose"
	case FormatKubernetes:
		return "Kubernetes"
	case FormatTerraform:
		return "Terraform"
	case FormatCloudFormation:
		return "AWS CloudFormation"
	case FormatAzureARM:
		return "Azure Resource Manager"
	case FormatIBMCloud:
		return "IBM Cloud"
	default:
		return "Unknown"
	}
}

func (f Format) String() string {
	return string(f)
}
