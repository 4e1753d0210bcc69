package cleanup

// CleanNumbers canonicalizes numeric tokens: spelled ordinals become digits,
// ordinal suffixes are lower-cased and leading zeros are dropped.
var CleanNumbers = Rules{
	WordRule("first", "1st", "first"),
	WordRule("second", "2nd", "second"),
	WordRule("third", "3rd", "third"),
	WordRule("fourth", "4th", "fourth"),
	WordRule("fifth", "5th", "fifth"),
	WordRule("sixth", "6th", "sixth"),
	WordRule("seventh", "7th", "seventh"),
	WordRule("eighth", "8th", "eighth"),
	WordRule("ninth", "9th", "ninth"),
	WordRule("tenth", "10th", "tenth"),
	NewRule("suffix-st", `(?i)\b(\d+)st\b`, "${1}st"),
	NewRule("suffix-nd", `(?i)\b(\d+)nd\b`, "${1}nd"),
	NewRule("suffix-rd", `(?i)\b(\d+)rd\b`, "${1}rd"),
	NewRule("suffix-th", `(?i)\b(\d+)th\b`, "${1}th"),
	NewRule("leading-zeros", `(^|[\s#])0+(\d)`, "${1}${2}"),
}
