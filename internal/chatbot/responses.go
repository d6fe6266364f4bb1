package chatbot

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Responses holds the canned reply text per router category. Any field
// left empty in an override file keeps its default.
type Responses struct {
	Greeting      string `yaml:"greeting"`
	StartupFound  string `yaml:"startup_found"`
	StartupEmpty  string `yaml:"startup_empty"`
	InvestorFound string `yaml:"investor_found"`
	InvestorEmpty string `yaml:"investor_empty"`
	Profile       string `yaml:"profile"`
	Help          string `yaml:"help"`
	Features      string `yaml:"features"`
	Fallback      string `yaml:"fallback"`
}

// DefaultResponses returns the built-in reply text.
func DefaultResponses() Responses {
	return Responses{
		Greeting: "Hello! I'm the FounderLink assistant.\n" +
			"I can help you discover startups, find investors, or manage your profile.\n" +
			"What are you looking for today?",
		StartupFound: "Here are some startups that match what you're looking for.\n" +
			"Open any of them to see the full pitch, traction numbers and team.",
		StartupEmpty: "I couldn't find any startups matching that.\n" +
			"Try a different category or describe the product you have in mind.",
		InvestorFound: "These investors are active on the platform right now.\n" +
			"Check their profiles for investment domains and past commitments.",
		InvestorEmpty: "No approved investors match that search yet.\n" +
			"New investors join regularly, so it's worth checking back.",
		Profile: "You can update your profile from the account page:\n" +
			"- Edit your bio and investment domains\n" +
			"- Change your password\n" +
			"- Review your commitments and connections",
		Help: "Here's what you can ask me:\n" +
			"- \"Find fintech startups\" to search listings\n" +
			"- \"Show me investors\" to browse active investors\n" +
			"- \"How do I update my profile\" for account help",
		Features: "FounderLink connects student founders with investors:\n" +
			"- Startup listings with traction and team data\n" +
			"- Investment commitments and upvotes\n" +
			"- Recommendations matched to your interests\n" +
			"- This assistant, for finding all of the above",
		Fallback: "I'm not sure what you're after.\n" +
			"Ask me to find startups or investors, or type \"help\" to see what I can do.",
	}
}

// LoadResponses reads reply-text overrides from a YAML file and merges
// them over the defaults. An empty path or a missing file yields the
// defaults without error.
func LoadResponses(path string) (Responses, error) {
	responses := DefaultResponses()
	if path == "" {
		return responses, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return responses, nil
		}
		return responses, err
	}

	var overrides Responses
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return responses, err
	}
	merge(&responses.Greeting, overrides.Greeting)
	merge(&responses.StartupFound, overrides.StartupFound)
	merge(&responses.StartupEmpty, overrides.StartupEmpty)
	merge(&responses.InvestorFound, overrides.InvestorFound)
	merge(&responses.InvestorEmpty, overrides.InvestorEmpty)
	merge(&responses.Profile, overrides.Profile)
	merge(&responses.Help, overrides.Help)
	merge(&responses.Features, overrides.Features)
	merge(&responses.Fallback, overrides.Fallback)
	return responses, nil
}

func merge(target *string, override string) {
	if override != "" {
		*target = override
	}
}
