//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of Orgmark.
//
// Orgmark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package entity maps entity names to their glyph records.
package entity

// Entity is one named symbolic glyph.
type Entity struct {
	Name    string // Name as written after the backslash.
	LaTeX   string // LaTeX command.
	HTML    string // HTML entity.
	ASCII   string // ASCII approximation.
	Unicode string // Unicode glyph.
}

// Lookup returns the glyph record for the given name. A miss is not an
// error to the caller of the inline grammar: there it degrades to text.
func Lookup(name string) (*Entity, bool) {
	e, found := table[name]
	return e, found
}

// Names returns the number of known entity names.
func Names() int { return len(table) }

var table = map[string]*Entity{}

func register(es []Entity) {
	for i := range es {
		table[es[i].Name] = &es[i]
	}
}

func init() {
	register([]Entity{
		// Greek letters.
		{"alpha", `\alpha`, "&alpha;", "alpha", "α"},
		{"beta", `\beta`, "&beta;", "beta", "β"},
		{"gamma", `\gamma`, "&gamma;", "gamma", "γ"},
		{"delta", `\delta`, "&delta;", "delta", "δ"},
		{"epsilon", `\epsilon`, "&epsilon;", "epsilon", "ε"},
		{"zeta", `\zeta`, "&zeta;", "zeta", "ζ"},
		{"eta", `\eta`, "&eta;", "eta", "η"},
		{"theta", `\theta`, "&theta;", "theta", "θ"},
		{"iota", `\iota`, "&iota;", "iota", "ι"},
		{"kappa", `\kappa`, "&kappa;", "kappa", "κ"},
		{"lambda", `\lambda`, "&lambda;", "lambda", "λ"},
		{"mu", `\mu`, "&mu;", "mu", "μ"},
		{"nu", `\nu`, "&nu;", "nu", "ν"},
		{"xi", `\xi`, "&xi;", "xi", "ξ"},
		{"pi", `\pi`, "&pi;", "pi", "π"},
		{"rho", `\rho`, "&rho;", "rho", "ρ"},
		{"sigma", `\sigma`, "&sigma;", "sigma", "σ"},
		{"tau", `\tau`, "&tau;", "tau", "τ"},
		{"upsilon", `\upsilon`, "&upsilon;", "upsilon", "υ"},
		{"phi", `\phi`, "&phi;", "phi", "φ"},
		{"chi", `\chi`, "&chi;", "chi", "χ"},
		{"psi", `\psi`, "&psi;", "psi", "ψ"},
		{"omega", `\omega`, "&omega;", "omega", "ω"},
		{"Gamma", `\Gamma`, "&Gamma;", "Gamma", "Γ"},
		{"Delta", `\Delta`, "&Delta;", "Delta", "Δ"},
		{"Theta", `\Theta`, "&Theta;", "Theta", "Θ"},
		{"Lambda", `\Lambda`, "&Lambda;", "Lambda", "Λ"},
		{"Xi", `\Xi`, "&Xi;", "Xi", "Ξ"},
		{"Pi", `\Pi`, "&Pi;", "Pi", "Π"},
		{"Sigma", `\Sigma`, "&Sigma;", "Sigma", "Σ"},
		{"Phi", `\Phi`, "&Phi;", "Phi", "Φ"},
		{"Psi", `\Psi`, "&Psi;", "Psi", "Ψ"},
		{"Omega", `\Omega`, "&Omega;", "Omega", "Ω"},
	})
	register([]Entity{
		// Arrows.
		{"rarr", `\rightarrow`, "&rarr;", "->", "→"},
		{"rightarrow", `\rightarrow`, "&rarr;", "->", "→"},
		{"to", `\to`, "&rarr;", "->", "→"},
		{"larr", `\leftarrow`, "&larr;", "<-", "←"},
		{"leftarrow", `\leftarrow`, "&larr;", "<-", "←"},
		{"uarr", `\uparrow`, "&uarr;", "^", "↑"},
		{"darr", `\downarrow`, "&darr;", "v", "↓"},
		{"harr", `\leftrightarrow`, "&harr;", "<->", "↔"},
		{"rArr", `\Rightarrow`, "&rArr;", "=>", "⇒"},
		{"lArr", `\Leftarrow`, "&lArr;", "<=", "⇐"},
		{"hArr", `\Leftrightarrow`, "&hArr;", "<=>", "⇔"},
	})
	register([]Entity{
		// Punctuation and typography.
		{"nbsp", `~`, "&nbsp;", " ", " "},
		{"hellip", `\ldots{}`, "&hellip;", "...", "…"},
		{"dots", `\ldots{}`, "&hellip;", "...", "…"},
		{"mdash", `---`, "&mdash;", "--", "—"},
		{"ndash", `--`, "&ndash;", "-", "–"},
		{"middot", `\textperiodcentered{}`, "&middot;", ".", "·"},
		{"bull", `\textbullet{}`, "&bull;", "*", "•"},
		{"star", `\star`, "*", "*", "⋆"},
		{"amp", `\&`, "&amp;", "&", "&"},
		{"lt", `\textless{}`, "&lt;", "<", "<"},
		{"gt", `\textgreater{}`, "&gt;", ">", ">"},
		{"quot", `\textquotedbl{}`, "&quot;", "\"", "\""},
		{"laquo", `\guillemotleft{}`, "&laquo;", "<<", "«"},
		{"raquo", `\guillemotright{}`, "&raquo;", ">>", "»"},
		{"sect", `\S`, "&sect;", "section", "§"},
		{"para", `\P`, "&para;", "paragraph", "¶"},
		{"dagger", `\textdagger{}`, "&dagger;", "+", "†"},
		{"Dagger", `\textdaggerdbl{}`, "&Dagger;", "++", "‡"},
		{"copy", `\textcopyright{}`, "&copy;", "(c)", "©"},
		{"reg", `\textregistered{}`, "&reg;", "(r)", "®"},
		{"trade", `\texttrademark{}`, "&trade;", "TM", "™"},
	})
	register([]Entity{
		// Math and currency.
		{"pm", `\pm`, "&plusmn;", "+-", "±"},
		{"times", `\times`, "&times;", "*", "×"},
		{"div", `\div`, "&divide;", "/", "÷"},
		{"frac12", `\textonehalf{}`, "&frac12;", "1/2", "½"},
		{"frac14", `\textonequarter{}`, "&frac14;", "1/4", "¼"},
		{"deg", `\textdegree{}`, "&deg;", "degree", "°"},
		{"infin", `\infty`, "&infin;", "inf", "∞"},
		{"infty", `\infty`, "&infin;", "inf", "∞"},
		{"sum", `\sum`, "&sum;", "sum", "∑"},
		{"prod", `\prod`, "&prod;", "prod", "∏"},
		{"int", `\int`, "&int;", "integral", "∫"},
		{"radic", `\sqrt{\,}`, "&radic;", "sqrt", "√"},
		{"le", `\le`, "&le;", "<=", "≤"},
		{"leq", `\le`, "&le;", "<=", "≤"},
		{"ge", `\ge`, "&ge;", ">=", "≥"},
		{"geq", `\ge`, "&ge;", ">=", "≥"},
		{"ne", `\neq`, "&ne;", "!=", "≠"},
		{"neq", `\neq`, "&ne;", "!=", "≠"},
		{"approx", `\approx`, "&asymp;", "~", "≈"},
		{"equiv", `\equiv`, "&equiv;", "==", "≡"},
		{"forall", `\forall`, "&forall;", "for all", "∀"},
		{"exist", `\exists`, "&exist;", "exists", "∃"},
		{"empty", `\emptyset`, "&empty;", "{}", "∅"},
		{"isin", `\in`, "&isin;", "element of", "∈"},
		{"notin", `\notin`, "&notin;", "not element of", "∉"},
		{"cap", `\cap`, "&cap;", "intersection", "∩"},
		{"cup", `\cup`, "&cup;", "union", "∪"},
		{"euro", `\texteuro{}`, "&euro;", "EUR", "€"},
		{"pound", `\pounds{}`, "&pound;", "GBP", "£"},
		{"yen", `\textyen{}`, "&yen;", "JPY", "¥"},
		{"cent", `\textcent{}`, "&cent;", "cent", "¢"},
	})
	register([]Entity{
		// Misc signs.
		{"check", `\checkmark`, "&checkmark;", "[x]", "✓"},
		{"checkmark", `\checkmark`, "&checkmark;", "[x]", "✓"},
		{"cross", `\textdied{}`, "&#10007;", "x", "✗"},
		{"smiley", `\ddot\smile`, "&#9786;", ":-)", "☺"},
		{"frowny", `\ddot\frown`, "&#9785;", ":-(", "☹"},
		{"loz", `\lozenge`, "&loz;", "<>", "◊"},
		{"spades", `\spadesuit`, "&spades;", "[spades]", "♠"},
		{"hearts", `\heartsuit`, "&hearts;", "[hearts]", "♥"},
		{"diams", `\diamondsuit`, "&diams;", "[diamonds]", "♦"},
		{"clubs", `\clubsuit`, "&clubs;", "[clubs]", "♣"},
	})
}
