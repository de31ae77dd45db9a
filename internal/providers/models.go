package providers

// Model keys accepted on the command line
const (
	ModelKeyFast    = "fast"
	ModelKeyDavinci = "davinci"

	DefaultModelKey = ModelKeyFast
)

const (
	modelFast    = "gpt-3.5-turbo-instruct"
	modelDavinci = "text-davinci-003"
)

// SelectModel maps a short model key to the provider model identifier.
// Unrecognized keys fall back to the fast model.
func SelectModel(key string) string {
	switch key {
	case ModelKeyDavinci:
		return modelDavinci
	case ModelKeyFast:
		return modelFast
	default:
		return modelFast
	}
}
