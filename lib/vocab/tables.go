package vocab

// the winter-games discipline set, from the olympics.com feed naming
var disciplines = []string{
	"Alpine Skiing",
	"Biathlon",
	"Bobsleigh",
	"Cross-Country Skiing",
	"Curling",
	"Figure Skating",
	"Freestyle Skiing",
	"Ice Hockey",
	"Luge",
	"Nordic Combined",
	"Short Track Speed Skating",
	"Skeleton",
	"Ski Jumping",
	"Ski Mountaineering",
	"Snowboard",
	"Speed Skating",
}

// country and team names, including historical committee names and
// alternate English renderings, mapped to NOC codes
var countryAliases = map[string]string{
	"Norway":                     "NOR",
	"Sweden":                     "SWE",
	"Finland":                    "FIN",
	"United States":              "USA",
	"United States of America":   "USA",
	"Canada":                     "CAN",
	"Germany":                    "GER",
	"Austria":                    "AUT",
	"Switzerland":                "SUI",
	"Italy":                      "ITA",
	"France":                     "FRA",
	"Netherlands":                "NED",
	"People's Republic of China": "CHN",
	"China":                      "CHN",
	"Japan":                      "JPN",
	"South Korea":                "KOR",
	"Republic of Korea":          "KOR",
	"Great Britain":              "GBR",
	"United Kingdom":             "GBR",
	"Team GB":                    "GBR",
	"Russian Olympic Committee":  "ROC",
	"Russia":                     "ROC",
	"Czech Republic":             "CZE",
	"Slovakia":                   "SVK",
	"Poland":                     "POL",
	"Slovenia":                   "SLO",
	"Hungary":                    "HUN",
	"Belgium":                    "BEL",
	"Spain":                      "ESP",
	"Australia":                  "AUS",
	"New Zealand":                "NZL",
	"Ukraine":                    "UKR",
	"Latvia":                     "LAT",
	"Estonia":                    "EST",
	"Liechtenstein":              "LIE",
	"Denmark":                    "DEN",
}
