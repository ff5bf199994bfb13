package skill

// FileName is the descriptor every skill directory must contain.
const FileName = "SKILL.md"

// Frontmatter keys.
const (
	KeyName        = "name"
	KeyDescription = "description"
)

// AllowedKeys lists the only keys permitted in SKILL.md frontmatter.
var AllowedKeys = []string{KeyName, KeyDescription}

// Metadata is the validated SKILL.md frontmatter.
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
