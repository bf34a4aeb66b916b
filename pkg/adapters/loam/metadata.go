package loam

// DocMetadata is the frontmatter of a corpus document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type DocMetadata struct {
	ID    string   `json:"id" mapstructure:"id"`
	Title string   `json:"title" mapstructure:"title"`
	Tags  []string `json:"tags" mapstructure:"tags"`
}
