package speechtext

// abbreviation is one spoken-form rewrite. Order matters: dotted forms come
// before their bare prefixes ("vs." before "vs").
type abbreviation struct {
	written string
	spoken  string
}

var abbreviations = []abbreviation{
	{"etc.", "etcetera"},
	{"vs.", "versus"},
	{"vs", "versus"},
	{"e.g.", "for example"},
	{"i.e.", "that is"},
	{"DIY", "D I Y"},
	{"LED", "L E D"},
	{"USB", "U S B"},
	{"HDMI", "H D M I"},
	{"WiFi", "Wi Fi"},
	{"CPU", "C P U"},
	{"GPU", "G P U"},
	{"HTML", "H T M L"},
	{"CSS", "C S S"},
	{"API", "A P I"},
	{"URL", "U R L"},
	{"PDF", "P D F"},
	{"PSI", "P S I"},
	{"RPM", "R P M"},
	{"MPH", "M P H"},
	{"HVAC", "H V A C"},
	{"AC", "A C"},
	{"DC", "D C"},
	{"TV", "T V"},
	{"DVD", "D V D"},
	{"CD", "C D"},
	{"lbs", "pounds"},
	{"oz", "ounces"},
	{"ft", "feet"},
	{"mm", "millimeters"},
	{"cm", "centimeters"},
	{"kg", "kilograms"},
}

var numberWords = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen", "twenty",
}

// symbolWords are spoken replacements for single symbols.
var symbolWords = []struct {
	symbol string
	word   string
}{
	{"&", "and"},
	{"@", "at"},
	{"#", "number"},
	{"$", "dollars"},
	{"%", "percent"},
}

// pauses maps punctuation to the SSML break inserted after it.
var pauses = []struct {
	mark string
	ms   int
}{
	{".", 500},
	{",", 300},
	{"!", 500},
	{"?", 500},
	{";", 400},
	{":", 300},
}
