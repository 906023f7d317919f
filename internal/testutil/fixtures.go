package testutil

// Sample bahn.de responses for client and handler tests

// SampleLocationResponse is a location search answer with two candidates
const SampleLocationResponse = `[
	{
		"extId": "8000105",
		"id": "A=1@O=Frankfurt(Main)Hbf@X=8663785@Y=50107145@U=80@L=8000105@B=1@p=1745437314@i=U×008011068@",
		"lat": 50.107145,
		"lon": 8.663785,
		"name": "Frankfurt(Main)Hbf",
		"products": ["ICE", "EC_IC", "IR", "REGIONAL", "SBAHN", "BUS", "UBAHN", "TRAM"],
		"type": "ST"
	},
	{
		"extId": "8002041",
		"id": "A=1@O=Frankfurt(Main)Süd@X=8686456@Y=50099364@U=80@L=8002041@",
		"lat": 50.099364,
		"lon": 8.686456,
		"name": "Frankfurt(Main)Süd",
		"type": "ST"
	}
]`

// SampleEmptyLocationResponse is what the location search returns for an unknown term
const SampleEmptyLocationResponse = `[]`

// SampleBestPriceResponse has three intervals out of price order and one
// interval without a connection, which must be dropped.
const SampleBestPriceResponse = `{
	"intervalle": [
		{
			"preis": {"betrag": 49.99, "waehrung": "EUR"},
			"verbindungen": [{
				"verbindung": {
					"verbindungsAbschnitte": [{
						"abfahrtsZeitpunkt": "2024-03-01T09:12:00",
						"ankunftsZeitpunkt": "2024-03-01T13:05:00",
						"abfahrtsOrt": "Berlin Hbf",
						"ankunftsOrt": "München Hbf"
					}]
				}
			}]
		},
		{
			"preis": {"betrag": 17.99, "waehrung": "EUR"},
			"verbindungen": [{
				"verbindung": {
					"verbindungsAbschnitte": [{
						"abfahrtsZeitpunkt": "2024-03-01T06:29:00",
						"ankunftsZeitpunkt": "2024-03-01T10:31:00",
						"abfahrtsOrt": "Berlin Hbf (tief)",
						"ankunftsOrt": "München Hbf"
					}, {
						"abfahrtsZeitpunkt": "2024-03-01T10:40:00",
						"ankunftsZeitpunkt": "2024-03-01T11:00:00",
						"abfahrtsOrt": "München Hbf",
						"ankunftsOrt": "München Ost"
					}]
				}
			}]
		},
		{
			"preis": {"betrag": 12.5, "waehrung": "EUR"},
			"verbindungen": []
		},
		{
			"preis": {"betrag": 29.99, "waehrung": "EUR"},
			"verbindungen": [{
				"verbindung": {
					"verbindungsAbschnitte": [{
						"abfahrtsZeitpunkt": "2024-03-01T15:00:00",
						"ankunftsZeitpunkt": "2024-03-01T19:02:00",
						"abfahrtsOrt": "Berlin Hbf",
						"ankunftsOrt": "München Hbf"
					}]
				}
			}]
		}
	]
}`

// SampleTiedPriceResponse has two intervals with the same price.
const SampleTiedPriceResponse = `{
	"intervalle": [
		{
			"preis": {"betrag": 21.99},
			"verbindungen": [{"verbindung": {"verbindungsAbschnitte": [{
				"abfahrtsZeitpunkt": "2024-03-01T07:00:00",
				"ankunftsZeitpunkt": "2024-03-01T11:00:00",
				"abfahrtsOrt": "A",
				"ankunftsOrt": "B"
			}]}}]
		},
		{
			"preis": {"betrag": 21.99},
			"verbindungen": [{"verbindung": {"verbindungsAbschnitte": [{
				"abfahrtsZeitpunkt": "2024-03-01T08:00:00",
				"ankunftsZeitpunkt": "2024-03-01T12:00:00",
				"abfahrtsOrt": "C",
				"ankunftsOrt": "D"
			}]}}]
		}
	]
}`

// SampleNoPriceResponse carries the upstream "no fare" marker
const SampleNoPriceResponse = `{"code":"MDA-AK-MSG-1001","details":{"typ":"Preisauskunft nicht möglich"}}`

// SampleEmptyIntervalsResponse is valid JSON with an empty interval list
const SampleEmptyIntervalsResponse = `{"intervalle": []}`

// SampleNoIntervalsResponse is valid JSON without an interval list
const SampleNoIntervalsResponse = `{"verbindungReference": {}}`
