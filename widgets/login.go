package widgets

import (
	"strings"

	tui "github.com/grindlemire/minitui"
)

// Login form dimensions; the form lays out its rows for exactly this size.
const (
	LoginWidth  = 40
	LoginHeight = 12

	// MaxFieldLen is the longest username or password accepted.
	MaxFieldLen = 24
)

const (
	keyEnter     = '\r'
	keyNewline   = '\n'
	keyBackspace = 127
)

// LoginForm is a two-field credential form. Enter toggles between the
// username and password fields, DEL erases the last character and printable
// ASCII is appended to the active field. The password is shown masked.
type LoginForm struct {
	username       []byte
	password       []byte
	typingPassword bool
}

var (
	_ tui.Widget       = (*LoginForm)(nil)
	_ tui.InputHandler = (*LoginForm)(nil)
)

// NewLoginForm creates an empty form with the username field active.
func NewLoginForm() *LoginForm {
	return &LoginForm{}
}

// Username returns the typed username.
func (f *LoginForm) Username() string {
	return string(f.username)
}

// Password returns the typed password in clear text.
func (f *LoginForm) Password() string {
	return string(f.password)
}

// TypingPassword reports whether input goes to the password field.
func (f *LoginForm) TypingPassword() bool {
	return f.typingPassword
}

// HandleInput applies one input byte to the active field.
func (f *LoginForm) HandleInput(b byte) {
	if b == keyEnter || b == keyNewline {
		f.typingPassword = !f.typingPassword
		return
	}

	target := &f.username
	if f.typingPassword {
		target = &f.password
	}

	if b == keyBackspace {
		if len(*target) > 0 {
			*target = (*target)[:len(*target)-1]
		}
		return
	}
	if len(*target) < MaxFieldLen && b >= 32 && b <= 126 {
		*target = append(*target, b)
	}
}

// Paint draws the framed form. The active field is underlined.
func (f *LoginForm) Paint(c *tui.Canvas) {
	r := c.Bounds()
	drawBorder(c, r, BorderDouble, tui.StyleRegular)

	userStyle, passStyle := tui.StyleUnderline, tui.StyleRegular
	if f.typingPassword {
		userStyle, passStyle = passStyle, userStyle
	}

	c.SetString(r.X+r.Width/2-3, r.Y+1, " LOGIN ", tui.StyleBold)
	c.SetString(r.X+4, r.Y+4, "Username:", tui.StyleRegular)
	c.SetString(r.X+4, r.Y+5, string(f.username), userStyle)
	c.SetString(r.X+4, r.Y+7, "Password:", tui.StyleRegular)
	c.SetString(r.X+4, r.Y+8, strings.Repeat("*", len(f.password)), passStyle)
	c.SetString(r.X+r.Width/2-8, r.Y+10, "[ Enter to Login ]", tui.StyleRegular)
}
