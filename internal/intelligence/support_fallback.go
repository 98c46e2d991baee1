package intelligence

import "strings"

// adviceTopic pairs trigger keywords with canned guidance.
type adviceTopic struct {
	keywords []string
	advice   string
}

var adviceTopics = []adviceTopic{
	{
		keywords: []string{"payment", "wallet", "money", "refund", "paisa"},
		advice: "Paisa related issue, no tension:\n" +
			"  - Check the Wallet screen for the transaction status (Pending clears in 24 hours).\n" +
			"  - Keep the transaction ID handy before calling.\n" +
			"  - If the amount is wrong, call the helpline at 1800-SAARTHI with your role and transaction ID.",
	},
	{
		keywords: []string{"delay", "late", "stuck", "track", "shipment", "driver"},
		advice: "For a delayed or stuck shipment:\n" +
			"  - Open Track Shipment and check the current stage with your SA- number.\n" +
			"  - Contact the transport provider shown on the booking.\n" +
			"  - If there is no movement for 6+ hours, call the helpline at 1800-SAARTHI.",
	},
	{
		keywords: []string{"book", "booking", "cancel", "vehicle", "transport"},
		advice: "Booking ke liye:\n" +
			"  - Use Book Transport from the dashboard and compare the vehicle quotes.\n" +
			"  - Pick the vehicle that matches your load size (Tata Ace for small loads).\n" +
			"  - To cancel, reply here with your SA- shipment number.",
	},
	{
		keywords: []string{"rate", "price", "mandi", "msp", "bhav"},
		advice: "Bhav check karne ke liye:\n" +
			"  - Open Mandi Rates for today's prices at nearby mandis.\n" +
			"  - Compare against the MSP shown below each price.\n" +
			"  - Set your primary crop in Profile so your mandi appears first.",
	},
}

const defaultAdvice = "Main madad karta hoon:\n" +
	"  - Describe your issue with the shipment number (SA-...) if you have one.\n" +
	"  - Check Track Shipment and Wallet for the latest status.\n" +
	"  - For urgent problems, call the helpline at 1800-SAARTHI."

// DeterministicAdvice produces support guidance without the LLM by matching
// the issue text against known topics.
func DeterministicAdvice(issue string) *SupportReply {
	lower := strings.ToLower(issue)
	for _, topic := range adviceTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return &SupportReply{Text: topic.advice, Source: "deterministic"}
			}
		}
	}
	return &SupportReply{Text: defaultAdvice, Source: "deterministic"}
}
