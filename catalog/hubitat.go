// Package catalog holds the packageManifest.json documents published for the aniva/hubitat01 drivers.
package catalog

import "github.com/smarty/hpmpack/contracts"

const (
	ManifestName = "packageManifest.json"

	author      = "Aniva"
	namespace   = "aniva"
	repository  = "https://github.com/aniva/hubitat01/blob/master/"
	rawContent  = "https://raw.githubusercontent.com/aniva/hubitat01/master/"
	licenseFile = rawContent + "LICENSE"
	payPalURL   = "https://paypal.me/AndreiIvanov420"
)

// Hubitat returns the published manifests in publication order.
func Hubitat() []contracts.Document {
	return []contracts.Document{
		{
			Path: component("VindstyrkaTile"),
			Record: contracts.PackageManifest{
				PackageName:       "Vindstyrka Air Quality Tile",
				Author:            author,
				Version:           "2.3.0",
				MinimumHEVersion:  "2.3.0",
				DateReleased:      "2026-01-17",
				DocumentationLink: readme("VindstyrkaTile"),
				LicenseFile:       licenseFile,
				PayPalURL:         payPalURL,
				ReleaseNotes:      "v2.3.0 - Stable Release. Updated manifest for HPM 1.9.x compatibility. Includes unified status table and configurable thresholds.",
				Drivers: []contracts.Driver{
					{
						ID:        "vindstyrka-tile-driver",
						Name:      "Vindstyrka Air Quality Tile",
						Namespace: namespace,
						Location:  source("VindstyrkaTile", "AirQualityTile.groovy"),
						Required:  true,
					},
				},
			},
		},
		{
			Path: component("IkeaTimmerflotte"),
			Record: contracts.PackageManifest{
				PackageName:       "IKEA TIMMERFLOTTE Matter Sensor",
				Author:            author,
				Version:           "1.0.11",
				MinimumHEVersion:  "2.3.6",
				DateReleased:      "2026-01-02",
				DocumentationLink: readme("IkeaTimmerflotte"),
				LicenseFile:       licenseFile,
				PayPalURL:         payPalURL,
				ReleaseNotes:      "v1.0.11 - Updated Release of dedicated Matter driver for IKEA TIMMERFLOTTE Temp & Humidity sensor.",
				Drivers: []contracts.Driver{
					{
						ID:        "c62f84b6-71d3-4a12-9c12-321345678912",
						Name:      "IKEA TIMMERFLOTTE Matter Sensor",
						Namespace: namespace,
						Location:  source("IkeaTimmerflotte", "IkeaTimmerflotte.groovy"),
						Required:  true,
					},
				},
			},
		},
		{
			Path: component("WimeterDriver"),
			Record: contracts.PackageManifest{
				PackageName:       "WiMeter Cloud Bridge",
				Author:            author,
				Version:           "4.15",
				MinimumHEVersion:  "2.3.0",
				DateReleased:      "2026-01-01",
				DocumentationLink: readme("WimeterDriver"),
				LicenseFile:       licenseFile,
				PayPalURL:         payPalURL,
				ReleaseNotes: "Major v4.15 Cumulative Update. \n\n" +
					"1. ATTRIBUTE REFACTOR: Standardized all state variables to CamelCase. \n" +
					"2. DASHBOARD TILE: Added configurable 'Live Status' HTML tile. \n" +
					"3. AUTOMATION: Added 'powerLevel' attribute.",
				Drivers: []contracts.Driver{
					{
						ID:        "92d05738-9572-4d04-9549-044738734960",
						Name:      "WiMeter Cloud Bridge",
						Namespace: namespace,
						Location:  source("WimeterDriver", "WiMeterCloudBridge.groovy"),
						Required:  true,
					},
					{
						ID:        "a1b2c3d4-e5f6-7890-1234-567890abcdef",
						Name:      "WiMeter Child Device",
						Namespace: namespace,
						Location:  source("WimeterDriver", "WiMeterCloudBridgeChild.groovy"),
						Required:  true,
					},
				},
			},
		},
		{
			Path: component("OpenWeatherMap"),
			Record: contracts.PackageManifest{
				PackageName:       "OpenWeatherMap-Alerts (Icon Fix)",
				Author:            "Scottma61 (Original) / Aniva (Patch)",
				Version:           "0.7.2",
				MinimumHEVersion:  "2.3.0",
				DateReleased:      "2025-01-01",
				DocumentationLink: readme("OpenWeatherMap"),
				LicenseFile:       licenseFile,
				PayPalURL:         payPalURL,
				ReleaseNotes:      "Fixed broken weather icons by replacing dead TinyURL link with HubitatCommunity GitHub source.",
				Description:       "Patched version of OpenWeatherMap-Alerts driver to fix broken image links.",
				Drivers: []contracts.Driver{
					{
						ID:        "98234-owm-alerts-fix",
						Name:      "OpenWeatherMap-Alerts Weather Driver",
						Namespace: "Matthew",
						Location:  source("OpenWeatherMap", "OpenWeatherMap.groovy"),
						Required:  true,
					},
				},
			},
		},
		{
			Path: component("IkeaParasoll"),
			Record: contracts.PackageManifest{
				PackageName:       "IKEA PARASOLL Matter Zigbee Sensor",
				Author:            author,
				Version:           "2.2.0",
				MinimumHEVersion:  "2.3.0",
				DateReleased:      "2026-01-09",
				DocumentationLink: readme("IkeaParasoll"),
				LicenseFile:       licenseFile,
				PayPalURL:         payPalURL,
				ReleaseNotes:      "Initial Release: Dedicated Matter driver for IKEA PARASOLL Door/Window sensor.",
				Drivers: []contracts.Driver{
					{
						ID:        "55d97475-1833-5527-0162-8901366f8257",
						Name:      "IKEA PARASOLL Matter Zigbee Sensor",
						Namespace: namespace,
						Location:  source("IkeaParasoll", "IkeaParasoll.groovy"),
						Required:  true,
					},
				},
			},
		},
		{
			Path: component("VirtualBattery"),
			Record: contracts.PackageManifest{
				PackageName:       "Virtual Smart Battery (Mutable)",
				Author:            author,
				Version:           "2.1.6",
				MinimumHEVersion:  "2.2.0",
				DateReleased:      "2026-01-05",
				DocumentationLink: readme("VirtualBattery"),
				LicenseFile:       licenseFile,
				PayPalURL:         payPalURL,
				ReleaseNotes: "v2.1.6: Major Overhaul! Transformed into a 'Smart Simulator' with gradual battery drain, " +
					"'Time Machine' date selection for past installs, and adaptive learning that adjusts to your real battery usage. " +
					"Includes new 'setSourceStatus' command for Rule Machine and fixed UI rendering.",
				Drivers: []contracts.Driver{
					{
						ID:        "94c86364-0722-4416-9051-7890255e7146",
						Name:      "Virtual Mutable Battery",
						Namespace: namespace,
						Location:  source("VirtualBattery", "VirtualBattery.groovy"),
						Required:  true,
					},
				},
			},
		},
		{
			Path: component("DirigeraBridge"),
			Record: contracts.PackageManifest{
				PackageName:       "IKEA DIRIGERA Bridge",
				Author:            author,
				Version:           "1.1.0",
				MinimumHEVersion:  "2.3.0",
				DateReleased:      "2026-01-10",
				DocumentationLink: readme("DirigeraBridge"),
				LicenseFile:       licenseFile,
				PayPalURL:         payPalURL,
				ReleaseNotes:      "Initial Release: Custom Matter Bridge driver for IKEA DIRIGERA Hub.",
				Drivers: []contracts.Driver{
					{
						ID:        "9102845d-523c-48b8-8259-165839201234",
						Name:      "IKEA DIRIGERA Bridge",
						Namespace: namespace,
						Location:  source("DirigeraBridge", "DirigeraBridge.groovy"),
						Required:  true,
					},
				},
			},
		},
	}
}

func component(folder string) string      { return folder + "/" + ManifestName }
func readme(folder string) string         { return repository + folder + "/README.md" }
func source(folder, groovy string) string { return rawContent + folder + "/" + groovy }
