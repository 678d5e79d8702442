// Package widgets provides leaf content for minitui trees: bordered boxes,
// text labels, solid fills and an interactive login form.
//
// Every widget paints relative to the canvas clip it is handed, which the
// tree sets to the leaf's resolved rectangle. Text is drawn one rune per
// column; escape sequences embedded in user text are stripped so they cannot
// move the terminal cursor behind the renderer's back.
package widgets
