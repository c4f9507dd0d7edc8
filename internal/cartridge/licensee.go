package cartridge

// oldLicenseeCodeMap holds the publishers most commonly found at
// 0x014B. Codes missing from the table render as an empty string.
var oldLicenseeCodeMap = map[uint8]string{
	0x00: "None",
	0x01: "Nintendo",
	0x08: "Capcom",
	0x09: "Hot B Co.",
	0x0A: "Jaleco",
	0x13: "Electronic Arts",
	0x18: "Hudson Soft",
	0x1F: "Virgin",
	0x30: "Infogrames",
	0x31: "Nintendo",
	0x32: "Bandai",
	0x34: "Konami",
	0x38: "Capcom",
	0x41: "Ubisoft",
	0x42: "Atlus",
	0x44: "Malibu",
	0x4F: "U.S. Gold",
	0x51: "Acclaim",
	0x52: "Activision",
	0x54: "Konami",
	0x5D: "Midway",
	0x67: "Ocean",
	0x69: "Electronic Arts",
	0x70: "Infogrames",
	0x78: "THQ",
	0x79: "Accolade",
	0x8B: "Bullet-Proof Software",
	0x99: "Pack In Soft",
	0xA4: "Konami",
	0xAF: "Namco",
	0xB0: "Acclaim",
	0xB4: "Enix",
	0xC0: "Taito",
	0xC3: "SquareSoft",
	0xE9: "Natsume",
	0xEB: "Atlus",
	0xFF: "LJN",
}

// newLicenseeCodeMap is consulted when the old licensee code is 0x33.
var newLicenseeCodeMap = map[string]string{
	"00": "None",
	"01": "Nintendo R&D1",
	"08": "Capcom",
	"13": "Electronic Arts",
	"18": "Hudson Soft",
	"20": "KSS",
	"24": "PCM Complete",
	"28": "Kemco Japan",
	"30": "Viacom",
	"31": "Nintendo",
	"32": "Bandai",
	"33": "Ocean/Acclaim",
	"34": "Konami",
	"41": "Ubisoft",
	"46": "Angel",
	"47": "Pony Canyon",
	"51": "Acclaim",
	"52": "Activision",
	"54": "Konami",
	"64": "LucasArts",
	"69": "Electronic Arts",
	"70": "Infogrames",
	"78": "THQ",
	"79": "Accolade",
	"86": "Tokuma Shoten",
	"91": "Chunsoft",
	"92": "Video System",
	"93": "Ocean/Acclaim",
	"97": "Kaneko",
	"99": "Pack In Soft",
	"A4": "Konami (Yu-Gi-Oh!)",
}
