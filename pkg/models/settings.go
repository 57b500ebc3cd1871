package models

// Settings is the persisted application configuration.
type Settings struct {
	Editor EditorSettings `json:"editor" yaml:"editor"`
	UI     UISettings     `json:"ui" yaml:"ui"`
	Window WindowSettings `json:"window" yaml:"window"`
}

// EditorSettings controls the in-window text editor
type EditorSettings struct {
	ShowLineNumbers bool `json:"show_line_numbers" yaml:"show_line_numbers"`
	TabWidth        int  `json:"tab_width" yaml:"tab_width"`
}

// UISettings covers presentation choices outside the editor itself.
type UISettings struct {
	PreviewStyle string `json:"preview_style" yaml:"preview_style"` // glamour style name or "auto"
	DefaultKind  string `json:"default_kind" yaml:"default_kind"`   // "plain", "markdown" or "html"
	StatusClock  bool   `json:"status_clock" yaml:"status_clock"`
}

// WindowSettings controls window placement and sizing
type WindowSettings struct {
	CascadeCols   int `json:"cascade_cols" yaml:"cascade_cols"`     // horizontal offset between stacked windows
	CascadeRows   int `json:"cascade_rows" yaml:"cascade_rows"`     // vertical offset between stacked windows
	WidthPercent  int `json:"width_percent" yaml:"width_percent"`   // window width as a share of the canvas
	HeightPercent int `json:"height_percent" yaml:"height_percent"` // window height as a share of the canvas
}

// DefaultSettings returns the configuration used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			ShowLineNumbers: true,
			TabWidth:        4,
		},
		UI: UISettings{
			PreviewStyle: "auto",
			DefaultKind:  "plain",
			StatusClock:  true,
		},
		Window: WindowSettings{
			CascadeCols:   2,
			CascadeRows:   1,
			WidthPercent:  72,
			HeightPercent: 70,
		},
	}
}
