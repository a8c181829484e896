// Package chatbot holds the scripted Sauti assistant. Responses come from a
// fixed keyword table checked in order; no conversation state is kept between
// calls.
package chatbot

import "strings"

// DefaultResponse is returned when no topic keyword matches.
const DefaultResponse = "I'm here to help with civic information, fact-checking, and navigating SautiCheck. You can ask me about voting procedures, government services, news verification, or how to use different features of this platform. What specific topic interests you?"

// Topic order matters: the first group with a matching keyword wins.
var topics = []struct {
	keywords []string
	response string
}{
	{
		keywords: []string{"hello", "hi", "hujambo"},
		response: "Hujambo! I'm Sauti, your civic assistant. I can help you with fact-checking, civic information, voting procedures, government services, and navigating this platform. What would you like to know?",
	},
	{
		keywords: []string{"fact check", "verify", "true", "false"},
		response: "I can help you verify information! You can use our fact-checking tool on this platform, or ask me specific questions about claims you've heard. For the most accurate results, please provide the specific claim you'd like me to analyze.",
	},
	{
		keywords: []string{"vote", "election", "iebc"},
		response: "For voting information in Kenya, you can register with IEBC (Independent Electoral and Boundaries Commission). Check our civic alerts section for current registration deadlines and polling station information. You need a valid national ID and must be 18 or older to register.",
	},
	{
		keywords: []string{"government", "service", "permit", "license"},
		response: "For government services in Kenya, you can visit eCitizen portal online or local Huduma Centers. Common services include permits, licenses, certificates, and tax services. Check our jobs section for current government opportunities too.",
	},
	{
		keywords: []string{"how", "navigate", "use"},
		response: "I can guide you through SautiCheck! We have: News Feed (latest verified civic news), Fact Checker (verify claims), Civic Alerts (important announcements), Jobs Hub (employment opportunities), and Bookmarks (save articles). What specific feature would you like help with?",
	},
	{
		keywords: []string{"news", "information", "update"},
		response: "Stay informed with our verified news feed! We cover Politics, Economy, Education, Health, and Infrastructure. All articles are fact-checked and sourced from reliable media outlets. You can filter by category or bookmark articles for later reading.",
	},
	{
		keywords: []string{"job", "employment", "work", "career"},
		response: "Check our Jobs Hub for verified employment opportunities from trusted organizations like Safaricom, Equity Bank, and government agencies. We offer full-time, part-time, contract, and internship positions across Kenya.",
	},
	{
		keywords: []string{"civic", "participate", "community"},
		response: "Great to hear you want to engage civically! Check our Civic Alerts for public participation opportunities, budget hearings, and community meetings. Stay informed through our news feed and always verify information before sharing.",
	},
}

// Respond picks the canned answer for the first topic whose keyword appears
// in the message, case-insensitively.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range topics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return topic.response
			}
		}
	}
	return DefaultResponse
}
