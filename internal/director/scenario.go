package director

// Template names accepted by Build.
const (
	TemplateYouTubeIntro  = "youtube_intro"
	TemplateTikTokShort   = "tiktok_short"
	TemplateTextExplainer = "text_explainer"
	TemplatePresentation  = "presentation"
)

// Props parameterizes a template. Only the fields of the selected template
// are read.
type Props struct {
	Template    string    `yaml:"template"`
	FPS         int       `yaml:"fps"`
	Title       string    `yaml:"title"`
	Subtitle    string    `yaml:"subtitle,omitempty"`
	AccentColor string    `yaml:"accent_color,omitempty"`
	Points      []string  `yaml:"points,omitempty"`   // tiktok_short
	Sections    []Section `yaml:"sections,omitempty"` // text_explainer
	Slides      []Section `yaml:"slides,omitempty"`   // presentation
	Theme       string    `yaml:"theme,omitempty"`    // presentation: dark or light
}

// Section is a heading with body text.
type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

const (
	DefaultAccent = "#ff6b6b"
	DefaultTheme  = "dark"
)

// DefaultProps returns the values used for fields a props file leaves out.
func DefaultProps() Props {
	return Props{
		FPS:         30,
		AccentColor: DefaultAccent,
		Theme:       DefaultTheme,
	}
}

// Theme is a presentation color set.
type Theme struct {
	Background string
	SlideBg    string
	Title      string
	Heading    string
	Body       string
	Accent     string
	EndBg      string
}

var themes = map[string]Theme{
	"dark": {
		Background: "#2c3e50",
		SlideBg:    "#34495e",
		Title:      "#FFFFFF",
		Heading:    "#ecf0f1",
		Body:       "#bdc3c7",
		Accent:     "#3498db",
		EndBg:      "#2c3e50",
	},
	"light": {
		Background: "#ecf0f1",
		SlideBg:    "#FFFFFF",
		Title:      "#2c3e50",
		Heading:    "#2c3e50",
		Body:       "#7f8c8d",
		Accent:     "#3498db",
		EndBg:      "#2c3e50",
	},
}
