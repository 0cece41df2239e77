package config

// ConstantsFile represents the structure of the embedded constants table.
type ConstantsFile struct {
	Dirs           DirsDTO       `yaml:"dirs"`
	Plotly         PlotlyDTO     `yaml:"plotly"`
	GeoAssets      GeoAssetsDTO  `yaml:"geoAssets"`
	Preprocess     PreprocessDTO `yaml:"preprocess"`
	PartialBundles []string      `yaml:"partialBundles"`
	Minify         MinifyDTO     `yaml:"minify"`
}

// DirsDTO holds the top-level source and output directories.
type DirsDTO struct {
	Src   string `yaml:"src"`
	Lib   string `yaml:"lib"`
	Build string `yaml:"build"`
	Dist  string `yaml:"dist"`
}

// PlotlyDTO holds the full library entry and outputs.
type PlotlyDTO struct {
	Index        string `yaml:"index"`
	Dist         string `yaml:"dist"`
	DistMin      string `yaml:"distMin"`
	DistWithMeta string `yaml:"distWithMeta"`
}

// GeoAssetsDTO holds the geo assets entry and output.
type GeoAssetsDTO struct {
	Src  string `yaml:"src"`
	Dist string `yaml:"dist"`
}

// PreprocessDTO holds the files the preprocess step must have produced.
type PreprocessDTO struct {
	CSS     string `yaml:"css"`
	FontSVG string `yaml:"fontSVG"`
}

// MinifyDTO holds the minifier options.
type MinifyDTO struct {
	Mangle    bool `yaml:"mangle"`
	ASCIIOnly bool `yaml:"asciiOnly"`
	Precision int  `yaml:"precision"`
}
