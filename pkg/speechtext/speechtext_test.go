package speechtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmoji(t *testing.T) {
	assert.Equal(t, "Great question! Let's dig in.", RemoveEmoji("Great question! 🚀 Let's dig in. 💡"))
	assert.Equal(t, "Sun and check", RemoveEmoji("Sun ☀️ and check ✅"))
	assert.Equal(t, "", RemoveEmoji("🔥🔥"))
}

func TestExpandAbbreviations(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Your API costs", "Your A P I costs"},
		{"pricing vs. volume", "pricing versus volume"},
		{"pricing vs volume", "pricing versus volume"},
		{"tools, e.g. CRM", "tools, for example CRM"},
		{"a DIY approach", "a D I Y approach"},
		{"10 lbs", "10 pounds"},
		// Word boundaries keep longer words intact.
		{"capital", "capital"},
		{"team in place", "team in place"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandAbbreviations(tt.in))
		})
	}
}

func TestSpellNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Try 3 things", "Try three things"},
		{"0 to 20", "zero to twenty"},
		{"about 21 leads", "about 21 leads"},
		{"5000 customers", "five thousand customers"},
		{"25000 users", "25 thousand users"},
		{"1500 users", "1500 users"},
		{"grew 3.5 times", "grew 3.5 times"},
		{"1,200 signups", "1,200 signups"},
		{"no numbers", "no numbers"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SpellNumbers(tt.in))
		})
	}
}

func TestCleanSymbols(t *testing.T) {
	assert.Equal(t, "Say hello now", CleanSymbols(`Say "hello" (quietly) now`))
	assert.Equal(t, "R and D at scale", CleanSymbols("R & D @ scale"))
	assert.Equal(t, "50percent margin", CleanSymbols("50% margin"))
	assert.Equal(t, "wait... then - go", CleanSymbols("wait… then — go"))
	assert.Equal(t, "Brand", CleanSymbols("Brand™"))
	assert.Equal(t, "list", CleanSymbols("[list]"))
}

func TestPrepare(t *testing.T) {
	got := Prepare("Hi! 👋 Raise prices 10%, then wait.")
	want := `<speak>Hi!<break time="500ms"/> Raise prices tenpercent,<break time="300ms"/> then wait.<break time="500ms"/></speak>`
	assert.Equal(t, want, got)
	assert.True(t, IsSSML(got))
}

func TestPrepare_AllPauses(t *testing.T) {
	got := Prepare("a; b: c? d")
	assert.Equal(t, `<speak>a;<break time="400ms"/> b:<break time="300ms"/> c?<break time="500ms"/> d</speak>`, got)
}

func TestIsSSML(t *testing.T) {
	assert.True(t, IsSSML("<speak>hello</speak>"))
	assert.True(t, IsSSML("  <speak>hello</speak>"))
	assert.False(t, IsSSML("hello"))
}
