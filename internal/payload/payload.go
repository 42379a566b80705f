// Package payload builds the help description handed to the auth setup tool
// through its --variables flag.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Provider names as shown by the setup tool.
const (
	ProviderGitHub = "GitHub OAuth"
	ProviderResend = "Resend"
)

// Variable describes one environment variable the tool prompts for.
type Variable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Provider groups the variables needed by one sign-in provider.
type Provider struct {
	Name      string     `json:"name"`
	Help      string     `json:"help"`
	Variables []Variable `json:"variables"`
}

// Payload is the top-level --variables document.
type Payload struct {
	Help      string     `json:"help"`
	Providers []Provider `json:"providers"`
	Success   string     `json:"success"`
}

// CallbackURL returns the GitHub OAuth callback URL served by the deployment.
func CallbackURL(deployment string) string {
	return "https://" + deployment + ".convex.site/api/auth/callback/github"
}

// Build returns the payload for the given deployment name. The deployment
// only appears in the GitHub provider's callback URL.
func Build(deployment string) *Payload {
	return &Payload{
		Help: "This template includes prebuilt sign-in via GitHub OAuth and " +
			"magic links via Resend. This command can help you configure " +
			"the credentials for these services via additional Convex " +
			"environment variables.",
		Providers: []Provider{
			{
				Name: ProviderGitHub,
				Help: "Create a GitHub OAuth App, follow the instruction here: " +
					"https://docs.github.com/en/apps/oauth-apps/building-oauth-apps/creating-an-oauth-app\n\n" +
					"When you're asked for a callback URL use:\n\n" +
					"  " + CallbackURL(deployment),
				Variables: []Variable{
					{Name: "AUTH_GITHUB_ID", Description: "the Client ID of your GitHub OAuth App"},
					{Name: "AUTH_GITHUB_SECRET", Description: "the generated client secret"},
				},
			},
			{
				Name: ProviderResend,
				Help: "Sign up for Resend at https://resend.com/signup. Then create an API Key.",
				Variables: []Variable{
					{Name: "AUTH_RESEND_KEY", Description: "the API Key"},
				},
			},
		},
		Success: "You're all set. If you need to, you can rerun this command with `authsetup`.",
	}
}

// VariableNames returns every variable name in provider order.
func (p *Payload) VariableNames() []string {
	var names []string
	for _, prov := range p.Providers {
		for _, v := range prov.Variables {
			names = append(names, v.Name)
		}
	}
	return names
}

// Marshal returns p as compact JSON without a trailing newline.
// HTML escaping is disabled so the placeholder "<your deployment name>"
// stays readable in the tool's output.
func Marshal(p *Payload) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Encode marshals p and escapes it for use inside a double-quoted shell argument.
func Encode(p *Payload) (string, error) {
	s, err := Marshal(p)
	if err != nil {
		return "", err
	}
	return EscapeShellArg(s), nil
}

// Decode reverses Encode as far as possible. Backticks come back as single
// quotes, see EscapeShellArg.
func Decode(escaped string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(Unescape(escaped)), &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &p, nil
}
