package envfile

import "strings"

// PlaceholderDeployment stands in for the deployment name when the
// environment file does not provide one.
const PlaceholderDeployment = "<your deployment name>"

// DeploymentName returns the segment after the last ':' in env[key].
// A value of "dev:myteam-proj123" yields "myteam-proj123"; a value without
// a colon is returned as is. PlaceholderDeployment is returned when the key
// is missing or the resulting name is empty. The name is not validated.
func DeploymentName(env Env, key string) string {
	value := env[key]
	name := value[strings.LastIndex(value, ":")+1:]
	if name == "" {
		return PlaceholderDeployment
	}
	return name
}
