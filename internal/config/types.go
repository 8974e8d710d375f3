package config

type Config struct {
	AnthropicKey         string
	OpenAIKey            string
	GeneratorProvider    string
	GeneratorModel       string
	GeneratorMaxTokens   int
	GeneratorTemperature float32
	Environment          string
	Port                 string
	RateLimit            string
}
