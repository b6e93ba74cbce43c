package weathercode

import "fmt"

// Code is a weather condition code as reported by the forecast service.
type Code int

var descriptions = map[Code]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly clear",
	3:  "cloudy",
	4:  "thin clouds",
	5:  "hazy clouds",
	6:  "cloudy",
	7:  "thick clouds",
	8:  "rain clouds",
	9:  "cloudy with thunderclouds",
	10: "haze",
	11: "light mist",
	12: "mist",
	13: "thunder without rain",
	14: "light precipitation",
	15: "precipitation in the distance",
	18: "squalls",
	19: "tornado",
	20: "drizzle in the past hour",
	21: "rain in the past hour",
	22: "snow in the past hour",
	25: "rain showers in the past hour",
	26: "snow showers in the past hour",
	27: "hail in the past hour",
	29: "thunderstorm in the past hour",
	30: "sandstorm",
	31: "sandstorm",
	33: "light dust storm",
	34: "dust storm",
	35: "heavy dust storm",
	40: "fog in the distance",
	41: "patchy fog",
	42: "fog thinning",
	43: "fog thickening",
	45: "fog",
	48: "rime fog",
	50: "light drizzle",
	51: "drizzle",
	53: "drizzle",
	55: "drizzle",
	56: "freezing drizzle",
	57: "heavy freezing drizzle",
	58: "drizzle and rain",
	59: "heavy drizzle and rain",
	60: "light rain",
	61: "rain",
	63: "rain",
	65: "rain",
	66: "freezing rain",
	67: "heavy freezing rain",
	68: "sleet",
	69: "heavy sleet",
	70: "light snow",
	71: "snow",
	73: "snow",
	75: "snow",
	76: "fine snow",
	77: "snow pellets",
	78: "snow crystals",
	79: "ice pellets",
	80: "rain showers",
	81: "rain showers",
	82: "rain showers",
	83: "rain and snow showers",
	84: "heavy rain and snow showers",
	85: "snow showers",
	86: "heavy snow showers",
	87: "sleet showers",
	88: "heavy sleet showers",
	89: "hail showers",
	90: "heavy hail showers",
	91: "light thunderstorm",
	92: "thunderstorm",
	93: "light thunderstorm with hail",
	94: "thunderstorm with hail",
	95: "thunderstorm",
	96: "severe thunderstorm",
	97: "heavy thunderstorm",
	98: "thunderstorm with dust",
	99: "violent thunderstorm",
}

// Lookup returns the table entry for code.
func Lookup(code Code) (string, bool) {
	desc, ok := descriptions[code]
	return desc, ok
}

// Describe returns the table entry for code, or a fallback that embeds the raw
// code when the table has no entry. It never fails.
func Describe(code Code) string {
	if desc, ok := descriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("unknown (code %d)", int(code))
}

// Len reports the number of classified codes.
func Len() int {
	return len(descriptions)
}
