package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

const armTemplate = `{
  "$schema": "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#",
  "contentVersion": "1.0.0.0",
  "resources": [
    {
      "type": "Microsoft.Network/virtualNetworks",
      "name": "vnet",
      "location": "westeurope"
    },
    {
      "type": "Microsoft.Compute/virtualMachines",
      "name": "vm1",
      "dependsOn": [
        "[resourceId('Microsoft.Network/virtualNetworks', 'vnet')]"
      ]
    },
    {
      "type": "Microsoft.Web/sites",
      "name": "[parameters('siteName')]",
      "kind": "app",
      "dependsOn": ["vnet"]
    }
  ]
}`

func TestArmIndexedNodeIDs(t *testing.T) {
	markup := generate(t, domain.FormatAzureARM, armTemplate)

	assert.Contains(t, markup, "Microsoft_Network_virtualNetworks_vnet_0")
	assert.Contains(t, markup, "Microsoft_Compute_virtualMachines_vm1_1")
	assert.Contains(t, markup, "Microsoft_Web_sites_parameters_siteName_2")
}

func TestArmSameNameDisambiguation(t *testing.T) {
	src := `{
  "$schema": "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#",
  "resources": [
    {"type": "Microsoft.Storage/storageAccounts", "name": "store"},
    {"type": "Microsoft.Storage/storageAccounts", "name": "store"}
  ]
}`
	markup := generate(t, domain.FormatAzureARM, src)

	assert.Contains(t, markup, "Microsoft_Storage_storageAccounts_store_0")
	assert.Contains(t, markup, "Microsoft_Storage_storageAccounts_store_1")
}

func TestArmResourceLabels(t *testing.T) {
	markup := generate(t, domain.FormatAzureARM, armTemplate)

	assert.Contains(t, markup, "<b>vnet</b>")
	assert.Contains(t, markup, "Microsoft.Network/virtualNetworks")
	assert.Contains(t, markup, "location: westeurope")
	assert.Contains(t, markup, "kind: app")
}

func TestArmDependencyPlaceholders(t *testing.T) {
	markup := generate(t, domain.FormatAzureARM, armTemplate)

	// resourceId() expressions contribute a typed placeholder.
	assert.Contains(t, markup, "dep_Microsoft_Network_virtualNetworks_vnet")
	assert.Contains(t, markup,
		"dep_Microsoft_Network_virtualNetworks_vnet -->|depends on| Microsoft_Compute_virtualMachines_vm1_1")

	// Plain entries fall back to the raw name.
	assert.Contains(t, markup, "dep_vnet -->|depends on| Microsoft_Web_sites_parameters_siteName_2")
}

func TestArmPlaceholderDeduplicated(t *testing.T) {
	src := `{
  "$schema": "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#",
  "resources": [
    {"type": "Microsoft.Compute/virtualMachines", "name": "a", "dependsOn": ["[resourceId('Microsoft.Network/virtualNetworks', 'net')]"]},
    {"type": "Microsoft.Compute/virtualMachines", "name": "b", "dependsOn": ["[resourceId('Microsoft.Network/virtualNetworks', 'net')]"]}
  ]
}`
	markup := generate(t, domain.FormatAzureARM, src)

	node := `dep_Microsoft_Network_virtualNetworks_net["`
	assert.Equal(t, 1, strings.Count(markup, node))
	assert.Equal(t, 2, strings.Count(markup, "dep_Microsoft_Network_virtualNetworks_net -->|depends on|"))
}

func TestArmClassTagging(t *testing.T) {
	markup := generate(t, domain.FormatAzureARM, armTemplate)

	assert.Contains(t, markup, "class Microsoft_Network_virtualNetworks_vnet_0 network;")
	assert.Contains(t, markup, "class Microsoft_Compute_virtualMachines_vm1_1 compute;")
	assert.Contains(t, markup, "class Microsoft_Web_sites_parameters_siteName_2 web;")
}
