package dialog

const (
	mbOKCancel = 0x00000001
	mbTopmost  = 0x00040000

	idCancel = 2
)

// messageBoxStyle returns the MessageBox flags for a prompt. Only the click
// prompt is raised above other windows; the confirmation opens right after
// the click, on top of the window that was picked.
func messageBoxStyle(stage Stage, topmost bool) uint32 {
	style := uint32(mbOKCancel)
	if stage == StageClick && topmost {
		style |= mbTopmost
	}
	return style
}
