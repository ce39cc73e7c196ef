package mermaid

// Style class names shared by the diagram generators. Tagging a node
// with one of these attaches the matching classDef from the palette.
const (
	ClassWeb      = "web"
	ClassDatabase = "database"
	ClassCache    = "cache"
	ClassQueue    = "queue"
	ClassNetwork  = "network"
	ClassStorage  = "storage"
	ClassCompute  = "compute"
	ClassConfig   = "config"
	ClassSecret   = "secret"
	ClassExternal = "external"
)

// palette is the fixed style table appended to every diagram. The
// "default" entry styles untagged nodes; force color for readable
// contrast on both light and dark themes.
var palette = []struct {
	name string
	def  string
}{
	{ClassWeb, "fill:#818cf8,stroke:#4f46e5,color:#fff"},
	{ClassDatabase, "fill:#a78bfa,stroke:#7c3aed,color:#fff"},
	{ClassCache, "fill:#fb7185,stroke:#e11d48,color:#fff"},
	{ClassQueue, "fill:#fbbf24,stroke:#d97706,color:#000"},
	{ClassNetwork, "fill:#67e8f9,stroke:#0891b2,color:#000"},
	{ClassStorage, "fill:#86efac,stroke:#16a34a,color:#000"},
	{ClassCompute, "fill:#c084fc,stroke:#9333ea,color:#fff"},
	{ClassConfig, "fill:#cbd5e1,stroke:#64748b,color:#000"},
	{ClassSecret, "fill:#f472b6,stroke:#db2777,color:#fff"},
	{ClassExternal, "fill:#e5e7eb,stroke:#9ca3af,color:#000"},
	{"default", "fill:#f1f5f9,stroke:#94a3b8,color:#000"},
}
