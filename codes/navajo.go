package codes

// navajoTable holds one WWII code-talker word per letter.
var navajoTable = map[byte]string{
	'A': "WOL-LA-CHEE", 'B': "SHUSH", 'C': "MOASI", 'D': "BE",
	'E': "DZEH", 'F': "MA-E", 'G': "KLIZZIE", 'H': "LIN",
	'I': "TKIN", 'J': "TKELE-CHO-G", 'K': "KLIZZIE-YAZZIE",
	'L': "DIBEH-YAZZIE", 'M': "NA-AS-TSO-SI", 'N': "NESH-CHEE",
	'O': "NE-AHS-JAH", 'P': "BI-SO-DIH", 'Q': "CA-YEILTH",
	'R': "GAH", 'S': "DIBEH", 'T': "THAN-ZIE", 'U': "NO-DA-IH",
	'V': "A-KEH-DI-GLINI", 'W': "GLOE-IH", 'X': "AL-NA-AS-DZOH",
	'Y': "TSAH-AS-ZIH", 'Z': "BESH-DO-TLIZ",
}

var navajoInverse = invertWordTable(navajoTable)

// NavajoEncode spells the text in the Navajo code-talker alphabet, with
// the same separators as NATO: one space between letters, / between words.
func NavajoEncode(text string) (string, error) {
	return encodeWordTable(navajoTable, text), nil
}

// NavajoDecode maps code words back to letters, dropping unknown tokens.
func NavajoDecode(text string) (string, error) {
	return decodeWordTable(navajoInverse, text), nil
}
