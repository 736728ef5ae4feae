package system

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console prepares the active virtual terminal for a framebuffer preview:
// graphics mode suppresses the blinking hardware cursor and console output
// drawn over the image.
type Console struct {
	Logger logger
}

// EnterGraphics switches the VT to graphics mode and hides the cursor.
func (c Console) EnterGraphics() error {
	if err := setMode(kdGraphics); err != nil {
		c.errorf("KD_GRAPHICS failed: %v", err)
		return err
	}
	c.infof("KD_GRAPHICS set")
	if err := writeVT("\x1b[?25l"); err != nil {
		c.errorf("hide cursor failed: %v", err)
	}
	return nil
}

// Restore shows the cursor and returns the VT to text mode.
func (c Console) Restore() error {
	if err := writeVT("\x1b[?25h"); err != nil {
		c.errorf("show cursor failed: %v", err)
	}
	if err := setMode(kdText); err != nil {
		c.errorf("KD_TEXT failed: %v", err)
		return err
	}
	c.infof("KD_TEXT set")
	return nil
}

func (c Console) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof("tty", format, args...)
	}
}

func (c Console) errorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("tty", format, args...)
	}
}
