package widgets

import (
	"strings"
	"testing"

	tui "github.com/grindlemire/minitui"
)

// paintAt paints w into a fresh width x height buffer with the canvas
// covering bounds.
func paintAt(w tui.Widget, width, height int, bounds tui.Rect) *tui.Buffer {
	buf := tui.NewBuffer(width, height)
	w.Paint(tui.NewCanvas(buf, bounds))
	return buf
}

func paint(w tui.Widget, width, height int) *tui.Buffer {
	return paintAt(w, width, height, tui.NewRect(0, 0, width, height))
}

func TestParseBorderStyle(t *testing.T) {
	type tc struct {
		name    string
		want    BorderStyle
		wantErr bool
	}

	tests := map[string]tc{
		"empty is double": {name: "", want: BorderDouble},
		"double":          {name: "double", want: BorderDouble},
		"single":          {name: "single", want: BorderSingle},
		"rounded":         {name: "rounded", want: BorderRounded},
		"thick":           {name: "thick", want: BorderThick},
		"none":            {name: "none", want: BorderNone},
		"unknown":         {name: "dotted", wantErr: true},
		"case sensitive":  {name: "Double", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBorderStyle(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBorderStyle(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseBorderStyle(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBox_Paint(t *testing.T) {
	type tc struct {
		box    *Box
		width  int
		height int
		bounds tui.Rect
		want   string
	}

	tests := map[string]tc{
		"double border with title": {
			box:    NewBox("Hi"),
			width:  6,
			height: 4,
			bounds: tui.NewRect(0, 0, 6, 4),
			want:   "╔════╗\n║ Hi ║\n║    ║\n╚════╝",
		},
		"single border": {
			box:    &Box{Border: BorderSingle},
			width:  4,
			height: 3,
			bounds: tui.NewRect(0, 0, 4, 3),
			want:   "┌──┐\n│  │\n└──┘",
		},
		"no border keeps the title": {
			box:    &Box{Title: "T", Border: BorderNone},
			width:  4,
			height: 2,
			bounds: tui.NewRect(0, 0, 4, 2),
			want:   "\n  T",
		},
		"clipped box does not close on the clip edge": {
			box:    NewBox("Hi"),
			width:  4,
			height: 3,
			bounds: tui.NewRect(0, 0, 6, 4),
			want:   "╔═══\n║ Hi\n║",
		},
		"offset bounds": {
			box:    &Box{Border: BorderRounded},
			width:  5,
			height: 4,
			bounds: tui.NewRect(1, 1, 3, 3),
			want:   "\n ╭─╮\n │ │\n ╰─╯",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := paintAt(tt.box, tt.width, tt.height, tt.bounds)
			if got := buf.StringTrimmed(); got != tt.want {
				t.Errorf("Box.Paint() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBox_TitleIsBoldAndSanitized(t *testing.T) {
	box := NewBox("\x1b[31mHi\x1b[0m")
	if box.Title != "Hi" {
		t.Fatalf("NewBox() title = %q, want %q", box.Title, "Hi")
	}

	buf := paint(box, 6, 4)
	if got := buf.Cell(2, 1); got.Rune != 'H' || got.Style != tui.StyleBold {
		t.Errorf("Cell(2, 1) = %v, want bold 'H'", got)
	}
	if got := buf.Cell(0, 0).Style; got != tui.StyleRegular {
		t.Errorf("border style = %v, want %v", got, tui.StyleRegular)
	}
}

func TestLabel_Paint(t *testing.T) {
	type tc struct {
		label  *Label
		width  int
		height int
		want   string
	}

	tests := map[string]tc{
		"single line": {
			label: NewLabel("hello"), width: 8, height: 1,
			want: "hello",
		},
		"multiple lines": {
			label: NewLabel("ab\ncd"), width: 4, height: 3,
			want: "ab\ncd\n",
		},
		"clipped on the right": {
			label: NewLabel("abcdef"), width: 3, height: 1,
			want: "abc",
		},
		"extra lines dropped": {
			label: NewLabel("one\ntwo\nthree"), width: 5, height: 2,
			want: "one\ntwo",
		},
		"escape sequences stripped": {
			label: NewLabel("\x1b[1mbold\x1b[0m"), width: 6, height: 1,
			want: "bold",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := paint(tt.label, tt.width, tt.height)
			if got := buf.StringTrimmed(); got != tt.want {
				t.Errorf("Label.Paint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel_Style(t *testing.T) {
	buf := paint(&Label{Text: "x", Style: tui.StyleUnderline}, 2, 1)
	if got := buf.Cell(0, 0).Style; got != tui.StyleUnderline {
		t.Errorf("Cell(0, 0).Style = %v, want %v", got, tui.StyleUnderline)
	}
}

func TestFill_Paint(t *testing.T) {
	if got := NewFill(0).Rune; got != ' ' {
		t.Errorf("NewFill(0).Rune = %q, want ' '", got)
	}

	buf := paintAt(&Fill{Rune: '#', Style: tui.StyleBold}, 5, 3, tui.NewRect(1, 1, 3, 5))
	want := "\n ###\n ###"
	if got := buf.StringTrimmed(); got != want {
		t.Errorf("Fill.Paint() = %q, want %q", got, want)
	}
	if got := buf.Cell(2, 2).Style; got != tui.StyleBold {
		t.Errorf("Cell(2, 2).Style = %v, want %v", got, tui.StyleBold)
	}
}

func TestLoginForm_HandleInput(t *testing.T) {
	type tc struct {
		input          []byte
		wantUser       string
		wantPass       string
		typingPassword bool
	}

	tests := map[string]tc{
		"typing goes to username": {
			input:    []byte("bob"),
			wantUser: "bob",
		},
		"enter switches to password": {
			input:    []byte("bob\rpw"),
			wantUser: "bob", wantPass: "pw", typingPassword: true,
		},
		"newline also switches": {
			input:    []byte("a\nb"),
			wantUser: "a", wantPass: "b", typingPassword: true,
		},
		"enter twice returns to username": {
			input:    []byte("a\r\rb"),
			wantUser: "ab",
		},
		"backspace erases": {
			input:    append([]byte("abc"), 127),
			wantUser: "ab",
		},
		"backspace on empty field": {
			input: []byte{127, 127},
		},
		"backspace only touches the active field": {
			input:    append([]byte("ab\rxy"), 127, 127, 127),
			wantUser: "ab", typingPassword: true,
		},
		"control bytes ignored": {
			input:    []byte{1, 'a', 27, 9, 'b'},
			wantUser: "ab",
		},
		"field length capped": {
			input:    []byte(strings.Repeat("x", MaxFieldLen+6)),
			wantUser: strings.Repeat("x", MaxFieldLen),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewLoginForm()
			for _, b := range tt.input {
				f.HandleInput(b)
			}
			if f.Username() != tt.wantUser {
				t.Errorf("Username() = %q, want %q", f.Username(), tt.wantUser)
			}
			if f.Password() != tt.wantPass {
				t.Errorf("Password() = %q, want %q", f.Password(), tt.wantPass)
			}
			if f.TypingPassword() != tt.typingPassword {
				t.Errorf("TypingPassword() = %v, want %v", f.TypingPassword(), tt.typingPassword)
			}
		})
	}
}

func TestLoginForm_Paint(t *testing.T) {
	f := NewLoginForm()
	for _, b := range []byte("bob\rsecret") {
		f.HandleInput(b)
	}

	buf := paint(f, LoginWidth, LoginHeight)
	lines := strings.Split(buf.StringTrimmed(), "\n")
	if len(lines) != LoginHeight {
		t.Fatalf("painted %d rows, want %d", len(lines), LoginHeight)
	}

	type tc struct {
		row  int
		want string
	}
	rows := map[string]tc{
		"top border":  {row: 0, want: "╔" + strings.Repeat("═", LoginWidth-2) + "╗"},
		"heading":     {row: 1, want: "║" + strings.Repeat(" ", 16) + " LOGIN " + strings.Repeat(" ", 15) + "║"},
		"user label":  {row: 4, want: "║   Username:" + strings.Repeat(" ", 26) + "║"},
		"user value":  {row: 5, want: "║   bob" + strings.Repeat(" ", 32) + "║"},
		"pass label":  {row: 7, want: "║   Password:" + strings.Repeat(" ", 26) + "║"},
		"pass masked": {row: 8, want: "║   ******" + strings.Repeat(" ", 29) + "║"},
		"button":      {row: 10, want: "║" + strings.Repeat(" ", 11) + "[ Enter to Login ]" + strings.Repeat(" ", 9) + "║"},
		"bottom":      {row: 11, want: "╚" + strings.Repeat("═", LoginWidth-2) + "╝"},
	}
	for name, tt := range rows {
		t.Run(name, func(t *testing.T) {
			if lines[tt.row] != tt.want {
				t.Errorf("row %d = %q, want %q", tt.row, lines[tt.row], tt.want)
			}
		})
	}

	if got := buf.Cell(18, 1).Style; got != tui.StyleBold {
		t.Errorf("heading style = %v, want %v", got, tui.StyleBold)
	}
	if got := buf.Cell(4, 8).Style; got != tui.StyleUnderline {
		t.Errorf("active password style = %v, want %v", got, tui.StyleUnderline)
	}
	if got := buf.Cell(4, 5).Style; got != tui.StyleRegular {
		t.Errorf("inactive username style = %v, want %v", got, tui.StyleRegular)
	}
}
