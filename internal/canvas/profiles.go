package canvas

// profile is a fixed resolution canvas
type profile struct {
	name    string
	width   int
	height  int
	padding int
}

func init() {
	Register(&profile{name: "uhd", width: 3840, height: 2160, padding: 32})
	Register(&profile{name: "qhd", width: 2560, height: 1440, padding: 24})
	Register(&profile{name: "fhd", width: 1920, height: 1080, padding: 16})
	Register(&profile{name: "hd", width: 1280, height: 720, padding: 12})
	Register(&profile{name: "portrait", width: 1080, height: 1920, padding: 16}) // reels, shorts
	Register(&profile{name: "square", width: 1080, height: 1080, padding: 16})
}

func (p *profile) GetName() string {
	return p.name
}

func (p *profile) GetDimensions() (width, height int) {
	return p.width, p.height
}

func (p *profile) GetDefaultPadding() int {
	return p.padding
}
