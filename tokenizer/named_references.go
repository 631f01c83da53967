package tokenizer

// namedReferences maps a character reference name — including the
// trailing semicolon for the modern form, and without one for the
// legacy subset that the HTML parsing algorithm still recognizes bare —
// to the code point(s) it resolves to. A handful of entries resolve to
// two code points (e.g. fjlig;); everything else resolves to one.
//
// This is a representative subset of the named character reference
// table, not the full ~2,231-entry list: it covers the common named
// references exercised by the html5lib tokenizer test corpus and by
// ordinary markup (markup/typography entities, arrows, set and logic
// symbols, the Greek alphabet, and the legacy no-semicolon entities),
// plus a couple of multi-codepoint entries so lookupNamedReference's
// longest-match behavior actually gets exercised against real ones.
var namedReferences = map[string][]rune{
	"amp;":    {'&'},
	"amp":     {'&'},
	"AMP;":    {'&'},
	"AMP":     {'&'},
	"lt;":     {'<'},
	"lt":      {'<'},
	"LT;":     {'<'},
	"LT":      {'<'},
	"gt;":     {'>'},
	"gt":      {'>'},
	"GT;":     {'>'},
	"GT":      {'>'},
	"quot;":   {'"'},
	"quot":    {'"'},
	"QUOT;":   {'"'},
	"QUOT":    {'"'},
	"apos;":   {'\''},
	"nbsp;":   {' '},
	"nbsp":    {' '},
	"not;":    {'¬'},
	"not":     {'¬'},
	"copy;":   {'©'},
	"copy":    {'©'},
	"COPY;":   {'©'},
	"COPY":    {'©'},
	"reg;":    {'®'},
	"reg":     {'®'},
	"trade;":  {'™'},
	"iexcl;":  {'¡'},
	"iexcl":   {'¡'},
	"cent;":   {'¢'},
	"cent":    {'¢'},
	"pound;":  {'£'},
	"pound":   {'£'},
	"curren;": {'¤'},
	"curren":  {'¤'},
	"yen;":    {'¥'},
	"yen":     {'¥'},
	"sect;":   {'§'},
	"sect":    {'§'},
	"deg;":    {'°'},
	"deg":     {'°'},
	"plusmn;": {'±'},
	"plusmn":  {'±'},
	"micro;":  {'µ'},
	"micro":   {'µ'},
	"para;":   {'¶'},
	"para":    {'¶'},
	"middot;": {'·'},
	"middot":  {'·'},
	"laquo;":  {'«'},
	"laquo":   {'«'},
	"raquo;":  {'»'},
	"raquo":   {'»'},
	"times;":  {'×'},
	"times":   {'×'},
	"divide;": {'÷'},
	"divide":  {'÷'},

	"hellip;": {'…'},
	"mdash;":  {'—'},
	"ndash;":  {'–'},
	"lsquo;":  {'‘'},
	"rsquo;":  {'’'},
	"sbquo;":  {'‚'},
	"ldquo;":  {'“'},
	"rdquo;":  {'”'},
	"bdquo;":  {'„'},
	"bull;":   {'•'},
	"dagger;": {'†'},
	"Dagger;": {'‡'},
	"permil;": {'‰'},
	"prime;":  {'′'},
	"Prime;":  {'″'},
	"lsaquo;": {'‹'},
	"rsaquo;": {'›'},
	"oline;":  {'‾'},
	"frasl;":  {'⁄'},
	"euro;":   {'€'},

	"fjlig;": {'f', 'j'},
	"NotEqual;":      {'≠'},
	"NotEqualTilde;": {'≂', '̸'},

	"larr;":   {'←'},
	"uarr;":   {'↑'},
	"rarr;":   {'→'},
	"darr;":   {'↓'},
	"harr;":   {'↔'},
	"crarr;":  {'↵'},
	"lArr;":   {'⇐'},
	"uArr;":   {'⇑'},
	"rArr;":   {'⇒'},
	"dArr;":   {'⇓'},
	"hArr;":   {'⇔'},

	"forall;":  {'∀'},
	"part;":    {'∂'},
	"exist;":   {'∃'},
	"empty;":   {'∅'},
	"nabla;":   {'∇'},
	"isin;":    {'∈'},
	"notin;":   {'∉'},
	"ni;":      {'∋'},
	"prod;":    {'∏'},
	"sum;":     {'∑'},
	"minus;":   {'−'},
	"lowast;":  {'∗'},
	"radic;":   {'√'},
	"prop;":    {'∝'},
	"infin;":   {'∞'},
	"ang;":     {'∠'},
	"and;":     {'∧'},
	"or;":      {'∨'},
	"cap;":     {'∩'},
	"cup;":     {'∪'},
	"int;":     {'∫'},
	"there4;":  {'∴'},
	"sim;":     {'∼'},
	"cong;":    {'≅'},
	"asymp;":   {'≈'},
	"ne;":      {'≠'},
	"equiv;":   {'≡'},
	"le;":      {'≤'},
	"ge;":      {'≥'},
	"sub;":     {'⊂'},
	"sup;":     {'⊃'},
	"nsub;":    {'⊄'},
	"sube;":    {'⊆'},
	"supe;":    {'⊇'},
	"oplus;":   {'⊕'},
	"otimes;":  {'⊗'},
	"perp;":    {'⊥'},
	"sdot;":    {'⋅'},
	"lceil;":   {'⌈'},
	"rceil;":   {'⌉'},
	"lfloor;":  {'⌊'},
	"rfloor;":  {'⌋'},
	"lang;":    {'⟨'},
	"rang;":    {'⟩'},
	"loz;":     {'◊'},
	"spades;":  {'♠'},
	"clubs;":   {'♣'},
	"hearts;":  {'♥'},
	"diams;":   {'♦'},

	"Alpha;": {'Α'}, "alpha;": {'α'},
	"Beta;": {'Β'}, "beta;": {'β'},
	"Gamma;": {'Γ'}, "gamma;": {'γ'},
	"Delta;": {'Δ'}, "delta;": {'δ'},
	"Epsilon;": {'Ε'}, "epsilon;": {'ε'},
	"Zeta;": {'Ζ'}, "zeta;": {'ζ'},
	"Eta;": {'Η'}, "eta;": {'η'},
	"Theta;": {'Θ'}, "theta;": {'θ'},
	"Iota;": {'Ι'}, "iota;": {'ι'},
	"Kappa;": {'Κ'}, "kappa;": {'κ'},
	"Lambda;": {'Λ'}, "lambda;": {'λ'},
	"Mu;": {'Μ'}, "mu;": {'μ'},
	"Nu;": {'Ν'}, "nu;": {'ν'},
	"Xi;": {'Ξ'}, "xi;": {'ξ'},
	"Omicron;": {'Ο'}, "omicron;": {'ο'},
	"Pi;": {'Π'}, "pi;": {'π'},
	"Rho;": {'Ρ'}, "rho;": {'ρ'},
	"Sigma;": {'Σ'}, "sigma;": {'σ'}, "sigmaf;": {'ς'},
	"Tau;": {'Τ'}, "tau;": {'τ'},
	"Upsilon;": {'Υ'}, "upsilon;": {'υ'},
	"Phi;": {'Φ'}, "phi;": {'φ'},
	"Chi;": {'Χ'}, "chi;": {'χ'},
	"Psi;": {'Ψ'}, "psi;": {'ψ'},
	"Omega;": {'Ω'}, "omega;": {'ω'},
}

// maxNamedReferenceLen bounds the lookahead the tokenizer performs in
// namedCharacterReferenceState before giving up: no entry in the table
// is longer than this many runes.
const maxNamedReferenceLen = 32

// lookupNamedReference finds the longest prefix of s present in
// namedReferences, per the longest-match rule the tokenization
// algorithm requires for named character references (e.g. "notin;"
// must not stop early at "not", although both are valid prefixes of
// "notin;"). It returns the matched
// name (including any trailing semicolon) and its resolved code
// points, or ok=false if no prefix of s names a reference at all.
func lookupNamedReference(s string) (name string, codepoints []rune, ok bool) {
	limit := len(s)
	if limit > maxNamedReferenceLen {
		limit = maxNamedReferenceLen
	}
	for n := limit; n > 0; n-- {
		candidate := s[:n]
		if cps, found := namedReferences[candidate]; found {
			return candidate, cps, true
		}
	}
	return "", nil, false
}

// c1ControlReplacements implements the numeric character reference end
// state's translation table: certain Windows-1252 code points in the
// C1 control range are remapped to the Unicode code points their
// authors actually meant, each coincidentally also raising
// ErrControlCharacterReference.
var c1ControlReplacements = map[rune]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}
