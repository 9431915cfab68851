package pgn

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// unknownValue is the value PGN prescribes for a roster tag nobody filled in.
func unknownValue(tag string) string {
	if tag == "Date" {
		return "????.??.??"
	}
	return "?"
}

// withRoster returns tags completed with unknown values for the missing
// roster tags. Result is left out; it always follows the game. The
// caller's map is not modified.
func withRoster(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags)+len(SevenTagRoster))
	for _, tag := range SevenTagRoster {
		if tag != "Result" {
			out[tag] = unknownValue(tag)
		}
	}
	for k, v := range tags {
		out[k] = v
	}
	return out
}
