package ipextract

type Config struct {
	Directories  []string `json:"directories"`
	FilePrefixes []string `json:"filePrefixes,omitempty"`
	FileSuffix   string   `json:"fileSuffix,omitempty"`
	Output       string   `json:"output,omitempty"`
	Archives     bool     `json:"archives,omitempty"`
}
