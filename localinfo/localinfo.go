// Package localinfo serves static Mauritius reference data: language
// phrases, etiquette tips, emergency contacts and important locations.
package localinfo

import (
	"net/http"
	"strings"

	"dreamtrip/utils"

	"github.com/julienschmidt/httprouter"
)

type Phrase struct {
	English       string `json:"english"`
	Creole        string `json:"creole"`
	French        string `json:"french"`
	Pronunciation string `json:"pronunciation"`
}

type EtiquetteTip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon"`
}

type EmergencyContact struct {
	Service     string `json:"service"`
	Number      string `json:"number"`
	Description string `json:"description"`
}

type Location struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
}

var phrases = []Phrase{
	{"Hello", "Bonzour", "Bonjour", "bon-ZHOOR"},
	{"Thank you", "Mersi", "Merci", "mer-SEE"},
	{"Please", "Silvouple", "S'il vous plaît", "seel-voo-PLAY"},
	{"Excuse me", "Eskize mwa", "Excusez-moi", "eks-koo-zay-MWAH"},
	{"How much?", "Konbyen?", "Combien?", "kom-bee-AHN"},
	{"Where is...?", "Kot...?", "Où est...?", "oo-AY"},
	{"I don't understand", "Mo pa konpran", "Je ne comprends pas", "zhuh nuh kom-prahn PAH"},
	{"Help!", "Ede mwa!", "Au secours!", "oh suh-KOOR"},
}

var etiquetteTips = []EtiquetteTip{
	{"Greetings", "Mauritians are friendly and welcoming. A handshake is common, and close friends may exchange kisses on both cheeks. Always greet with 'Bonjour' or 'Bonzour' during the day.", "👋"},
	{"Dress Code", "Dress modestly when visiting religious sites. Beachwear is only appropriate at beaches and pools. Smart casual is preferred for restaurants and hotels.", "👔"},
	{"Dining Etiquette", "Wait to be seated at restaurants. Tipping 10-15% is appreciated but not mandatory. Try to finish your plate as leaving food is considered wasteful.", "🍽️"},
	{"Religious Respect", "Mauritius is multicultural with Hindu, Muslim, Christian, and Buddhist communities. Remove shoes before entering temples and mosques.", "🕌"},
	{"Photography", "Always ask permission before photographing people, especially at religious sites. Some areas may restrict photography.", "📸"},
	{"Shopping", "Bargaining is acceptable at markets but not in shops with fixed prices. Central Market in Port Louis is great for souvenirs and local crafts.", "🛍️"},
}

var emergencyContacts = []EmergencyContact{
	{"Police Emergency", "999", "For immediate police assistance"},
	{"Fire Service", "995", "Fire emergencies and rescue services"},
	{"Medical Emergency (SAMU)", "114", "Medical emergencies and ambulance"},
	{"Tourist Hotline", "152", "Tourist assistance and information"},
	{"Traffic Police", "208-5021", "Traffic incidents and road assistance"},
	{"Airport Police", "637-3030", "Airport security and assistance"},
}

var importantLocations = []Location{
	{"Sir Seewoosagur Ramgoolam International Airport", "Plaine Magnien", "603-6000", "Airport"},
	{"Victoria Hospital", "Candos, Quatre Bornes", "424-3661", "Hospital"},
	{"Prime Minister's Office", "Level 6, New Government Centre, Port Louis", "201-1146", "Government"},
	{"Mauritius Tourism Promotion Authority", "11th Floor, Air Mauritius Centre, Port Louis", "210-1545", "Tourism"},
}

// LocationsByType filters locations by their type, case-insensitive. An
// empty filter returns everything.
func LocationsByType(locationType string) []Location {
	if locationType == "" {
		return importantLocations
	}
	var out []Location
	for _, location := range importantLocations {
		if strings.EqualFold(location.Type, locationType) {
			out = append(out, location)
		}
	}
	return out
}

// GET /api/localinfo
func GetLocalInfo(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"phrases":           phrases,
		"etiquette":         etiquetteTips,
		"emergencyContacts": emergencyContacts,
		"locations":         LocationsByType(r.URL.Query().Get("type")),
	})
}
