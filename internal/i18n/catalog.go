package i18n

var Default = Catalog{
	"en": {
		"plans.month":  "month",
		"plans.months": "months",
		"plans.year":   "year",
		"plans.days":   "days",
		"whatsapp.orderMessage": "Hello! I would like to order an IPTV subscription.\n\n" +
			"Order ID: {{orderId}}\nName: {{name}}\nEmail: {{email}}\nPhone: {{phone}}\nCountry: {{country}}\n" +
			"Plan: {{planTitle}} ({{durationText}})\nPrice: {{price}}\nNote: {{note}}",
	},
	"fr": {
		"plans.month":  "mois",
		"plans.months": "mois",
		"plans.year":   "an",
		"plans.days":   "jours",
		"whatsapp.orderMessage": "Bonjour ! Je souhaite commander un abonnement IPTV.\n\n" +
			"ID commande : {{orderId}}\nNom : {{name}}\nE-mail : {{email}}\nTéléphone : {{phone}}\nPays : {{country}}\n" +
			"Forfait : {{planTitle}} ({{durationText}})\nPrix : {{price}}\nRemarque : {{note}}",
	},
	"es": {
		"plans.month":  "mes",
		"plans.months": "meses",
		"plans.year":   "año",
		"plans.days":   "días",
		"whatsapp.orderMessage": "¡Hola! Quiero pedir una suscripción IPTV.\n\n" +
			"Pedido: {{orderId}}\nNombre: {{name}}\nEmail: {{email}}\nTeléfono: {{phone}}\nPaís: {{country}}\n" +
			"Plan: {{planTitle}} ({{durationText}})\nPrecio: {{price}}\nNota: {{note}}",
	},
	"de": {
		"plans.month":  "Monat",
		"plans.months": "Monate",
		"plans.year":   "Jahr",
		"plans.days":   "Tage",
		"whatsapp.orderMessage": "Hallo! Ich möchte ein IPTV-Abo bestellen.\n\n" +
			"Bestellnummer: {{orderId}}\nName: {{name}}\nE-Mail: {{email}}\nTelefon: {{phone}}\nLand: {{country}}\n" +
			"Paket: {{planTitle}} ({{durationText}})\nPreis: {{price}}\nNotiz: {{note}}",
	},
	"it": {
		"plans.month":  "mese",
		"plans.months": "mesi",
		"plans.year":   "anno",
		"plans.days":   "giorni",
		"whatsapp.orderMessage": "Ciao! Vorrei ordinare un abbonamento IPTV.\n\n" +
			"ID ordine: {{orderId}}\nNome: {{name}}\nEmail: {{email}}\nTelefono: {{phone}}\nPaese: {{country}}\n" +
			"Piano: {{planTitle}} ({{durationText}})\nPrezzo: {{price}}\nNota: {{note}}",
	},
	"pt": {
		"plans.month":  "mês",
		"plans.months": "meses",
		"plans.year":   "ano",
		"plans.days":   "dias",
		"whatsapp.orderMessage": "Olá! Quero encomendar uma assinatura IPTV.\n\n" +
			"ID do pedido: {{orderId}}\nNome: {{name}}\nEmail: {{email}}\nTelefone: {{phone}}\nPaís: {{country}}\n" +
			"Plano: {{planTitle}} ({{durationText}})\nPreço: {{price}}\nNota: {{note}}",
	},
	"nl": {
		"plans.month":  "maand",
		"plans.months": "maanden",
		"plans.year":   "jaar",
		"plans.days":   "dagen",
		"whatsapp.orderMessage": "Hallo! Ik wil graag een IPTV-abonnement bestellen.\n\n" +
			"Bestelnummer: {{orderId}}\nNaam: {{name}}\nE-mail: {{email}}\nTelefoon: {{phone}}\nLand: {{country}}\n" +
			"Pakket: {{planTitle}} ({{durationText}})\nPrijs: {{price}}\nNotitie: {{note}}",
	},
}
