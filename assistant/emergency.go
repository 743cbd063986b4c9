package assistant

import "strings"

// Any of these in the user message short-circuits the whole pipeline; no
// model call, no context gathering, just the emergency card.
var emergencyKeywords = []string{
	"emergency", "help", "lost", "sick", "injured", "accident", "police",
	"hospital", "ambulance", "fire", "danger", "urgent", "emergency contact",
}

const emergencyResponse = `🚨 EMERGENCY ASSISTANCE FOR MAURITIUS:

**Emergency Numbers:**
• Police: 999 or 112
• Medical Emergency: 114
• Fire Brigade: 995
• Tourist Police: +230 210 3894

**Hospitals:**
• Dr Jeetoo Hospital: +230 212 3201
• Wellkin Hospital: +230 401 9500
• Clinique du Nord: +230 247 2532

**Embassies & Consulates:**
• British High Commission: +230 202 9400
• US Embassy: +230 202 4400
• French Embassy: +230 202 0100

**Tourist Assistance:**
• Mauritius Tourism Authority: +230 210 1545
• Tourist Police Hotline: +230 210 3894

Stay calm, call the appropriate emergency number, and provide your exact location if possible.`

// CheckEmergency returns the emergency assistance card when the message
// contains an emergency keyword (case-insensitive substring match), or
// "" when it does not.
func CheckEmergency(message string) string {
	lower := strings.ToLower(message)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lower, keyword) {
			return emergencyResponse
		}
	}
	return ""
}
