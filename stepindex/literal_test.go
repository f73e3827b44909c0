package stepindex_test

import (
	"testing"

	bddassert "github.com/go-bdd/assert"
	"github.com/stretchr/testify/assert"

	"github.com/veighnsche/cukerust/stepindex"
)

func TestReadFirstLiteral_RawStrings(t *testing.T) {
	content, ok := stepindex.ReadFirstLiteral([]byte(`r"^foo$"`))
	bddassert.True(t, ok)
	assert.Equal(t, "^foo$", content)

	content, ok = stepindex.ReadFirstLiteral([]byte(`r#"a "quoted" word"#`))
	bddassert.True(t, ok)
	assert.Equal(t, `a "quoted" word`, content)

	content, ok = stepindex.ReadFirstLiteral([]byte(`r###"multi # hash$"###`))
	bddassert.True(t, ok)
	assert.Equal(t, "multi # hash$", content)
}

func TestReadFirstLiteral_Plain(t *testing.T) {
	content, ok := stepindex.ReadFirstLiteral([]byte(`"hello\nworld"`))
	bddassert.True(t, ok)
	assert.Equal(t, "hello\nworld", content)
}

func TestReadFirstLiteral_UnknownEscapePreserved(t *testing.T) {
	content, ok := stepindex.ReadFirstLiteral([]byte(`"\d+"`))
	bddassert.True(t, ok)
	assert.Equal(t, `\d+`, content)
}

func TestReadFirstLiteral_AllEscapes(t *testing.T) {
	content, ok := stepindex.ReadFirstLiteral([]byte(`"a\"b\\c\nd\re\tf"`))
	bddassert.True(t, ok)
	assert.Equal(t, "a\"b\\c\nd\re\tf", content)
}

func TestReadFirstLiteral_Unterminated(t *testing.T) {
	_, ok := stepindex.ReadFirstLiteral([]byte(`"unterminated`))
	assert.False(t, ok)

	_, ok = stepindex.ReadFirstLiteral([]byte(`r#"unterminated"`))
	assert.False(t, ok)
}

func TestReadFirstLiteral_NoLiteral(t *testing.T) {
	_, ok := stepindex.ReadFirstLiteral([]byte(`no literal here`))
	assert.False(t, ok)
}

func TestReadFirstLiteral_SkipsToFirstLiteral(t *testing.T) {
	content, ok := stepindex.ReadFirstLiteral([]byte(`foo(), "first", "second"`))
	bddassert.True(t, ok)
	assert.Equal(t, "first", content)
}
