package gui

import "github.com/kilianp07/designpatterns/core/logger"

// WindowsInput is an input field drawn in the Windows look.
type WindowsInput struct{ log logger.Logger }

func (w *WindowsInput) Render()  { w.log.Infof("Rendering Windows Input.") }
func (*WindowsInput) Family() OS { return Windows }
func (*WindowsInput) isInput()   {}

// WindowsButton is a button drawn in the Windows look.
type WindowsButton struct{ log logger.Logger }

func (w *WindowsButton) Render()  { w.log.Infof("Rendering Windows Button.") }
func (*WindowsButton) Family() OS { return Windows }
func (*WindowsButton) isButton()  {}

// WindowsCheckbox is a checkbox drawn in the Windows look.
type WindowsCheckbox struct{ log logger.Logger }

func (w *WindowsCheckbox) Render()   { w.log.Infof("Rendering Windows Checkbox.") }
func (*WindowsCheckbox) Family() OS  { return Windows }
func (*WindowsCheckbox) isCheckbox() {}

// MacOSInput is an input field drawn in the MacOS look.
type MacOSInput struct{ log logger.Logger }

func (m *MacOSInput) Render()  { m.log.Infof("Rendering MacOS Input.") }
func (*MacOSInput) Family() OS { return MacOS }
func (*MacOSInput) isInput()   {}

// MacOSButton is a button drawn in the MacOS look.
type MacOSButton struct{ log logger.Logger }

func (m *MacOSButton) Render()  { m.log.Infof("Rendering MacOS Button.") }
func (*MacOSButton) Family() OS { return MacOS }
func (*MacOSButton) isButton()  {}

// MacOSCheckbox is a checkbox drawn in the MacOS look.
type MacOSCheckbox struct{ log logger.Logger }

func (m *MacOSCheckbox) Render()   { m.log.Infof("Rendering MacOS Checkbox.") }
func (*MacOSCheckbox) Family() OS  { return MacOS }
func (*MacOSCheckbox) isCheckbox() {}
