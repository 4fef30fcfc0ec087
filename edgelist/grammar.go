package edgelist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The banner rule precedes Comment so "%%MatrixMarket" is not swallowed as a
// plain comment. Field stops at comment characters, so "2#x" is "2" + comment.
var edgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Banner", Pattern: `%%MatrixMarket[^\n]*`},
	{Name: "Comment", Pattern: `[#%][^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\f\v\r]+`},
	{Name: "Field", Pattern: `[^\s#%]+`},
})

type document struct {
	Banner string  `parser:"@Banner?"`
	Lines  []*line `parser:"( @@ | EOL )*"`
}

type line struct {
	Pos    lexer.Position
	Fields []string `parser:"@Field+"`
}

var parser = participle.MustBuild[document](
	participle.Lexer(edgeLexer),
	participle.Elide("Whitespace", "Comment"),
)
