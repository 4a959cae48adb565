package i18n

import (
	"strings"

	"github.com/jeandeaual/go-locale"
	"go.uber.org/zap"
)

var lang string

var translations = map[string]map[string]string{
	"Split": {
		"pt": "Parcial",
		"es": "Parcial",
		"ru": "Отрезок",
	},
	"since start": {
		"pt": "desde o início",
		"es": "desde el inicio",
		"ru": "с начала",
	},
	"No more splits available.": {
		"pt": "Não há mais parciais disponíveis.",
		"es": "No hay más parciales disponibles.",
		"ru": "Больше отрезков нет.",
	},
	"Controls:": {
		"pt": "Controles:",
		"es": "Controles:",
		"ru": "Управление:",
	},
	"quit": {
		"pt": "sair",
		"es": "salir",
		"ru": "выход",
	},
	"new split": {
		"pt": "nova parcial",
		"es": "nueva parcial",
		"ru": "новый отрезок",
	},
}

// Init selects the message language. A non-empty forced value wins over the
// system locale.
func Init(forced string, log *zap.Logger) {
	if forced = strings.TrimSpace(forced); forced != "" {
		log.Debug("language forced", zap.String("lang", forced))
		lang = normalize(forced)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Debug("could not get user locale, defaulting to english", zap.Error(err))
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		log.Debug("detected user locale", zap.String("locale", userLocales[0]))
		lang = normalize(userLocales[0])
	} else {
		log.Debug("no user locale detected, defaulting to english")
		lang = "en"
	}
	log.Debug("language set", zap.String("lang", lang))
}

func normalize(tag string) string {
	tag = strings.ToLower(tag)
	for _, l := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(tag, l) {
			return l
		}
	}
	return "en"
}

// T returns the message for key in the selected language, or key itself when
// no translation exists.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}
