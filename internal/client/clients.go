package client

import "github.com/Minesh6684/OpenAI-Translator/internal/config"

type Clients struct {
	*TranslatorAPI
}

func InitClients(api config.APIConfig, app config.AppConfig) Clients {
	return Clients{
		TranslatorAPI: NewTranslatorAPI(api.BaseURL, app.Timeout),
	}
}
