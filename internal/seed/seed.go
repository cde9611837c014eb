// Package seed provides the demo dataset the dashboard ships with. The
// in-memory backend loads it on every start; the Postgres backend loads
// it only into an empty database.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	activitydomain "github.com/labtrack/labtrack/internal/activity/domain"
	"github.com/labtrack/labtrack/internal/component/domain"
	userdomain "github.com/labtrack/labtrack/internal/user/domain"
	"github.com/labtrack/labtrack/pkg/logger"
)

const defaultAvatar = "https://placehold.co/40x40.png"

// Users returns the built-in accounts
func Users() []userdomain.User {
	now := time.Now()
	return []userdomain.User{
		{
			ID:        uuid.NewString(),
			Name:      "Admin User",
			Email:     "admin@labtrack.com",
			Role:      userdomain.RoleAdmin,
			Avatar:    defaultAvatar,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Tech User",
			Email:     "tech@labtrack.com",
			Role:      userdomain.RoleTechnician,
			Avatar:    defaultAvatar,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Name:      "Researcher User",
			Email:     "researcher@labtrack.com",
			Role:      userdomain.RoleResearcher,
			Avatar:    defaultAvatar,
			CreatedAt: now,
		},
	}
}

// Components returns the demo inventory. It spans every category and
// includes low-stock, out-of-stock and stale entries so the dashboard
// has something to show on first boot.
func Components() []domain.Component {
	now := time.Now()
	recent := now.AddDate(0, 0, -5)
	stale := now.AddDate(0, -4, 0)

	price := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	items := []domain.Component{
		{
			Name: "10k Ohm Resistor", PartNumber: "RES-10K-0805",
			Manufacturer: "Yageo", Description: "10k ohm 1% 0805 chip resistor",
			Category: domain.CategoryResistors, Location: "Shelf A1",
			Quantity: 4200, LowStockThreshold: 500, UnitPrice: price("0.01"),
			DatasheetURL:    "https://www.yageo.com/en/ProductSearch/PartNumberSearch?part_number=RC0805FR-0710KL",
			LastOutwardDate: recent,
		},
		{
			Name: "100nF Ceramic Capacitor", PartNumber: "CAP-100N-X7R",
			Manufacturer: "Murata", Description: "100nF 50V X7R 0603 MLCC",
			Category: domain.CategoryCapacitors, Location: "Shelf A2",
			Quantity: 85, LowStockThreshold: 200, UnitPrice: price("0.02"),
			LastOutwardDate: recent,
		},
		{
			Name: "10uH Power Inductor", PartNumber: "IND-10U-SMD",
			Manufacturer: "Bourns", Description: "10uH 2A shielded power inductor",
			Category: domain.CategoryInductors, Location: "Shelf A3",
			Quantity: 310, LowStockThreshold: 50, UnitPrice: price("0.35"),
			LastOutwardDate: stale,
		},
		{
			Name: "1N4148 Switching Diode", PartNumber: "DIO-1N4148",
			Manufacturer: "Vishay", Description: "100V 200mA small-signal diode",
			Category: domain.CategoryDiodes, Location: "Shelf B1",
			Quantity: 0, LowStockThreshold: 100, UnitPrice: price("0.03"),
			LastOutwardDate: stale,
		},
		{
			Name: "2N2222A NPN Transistor", PartNumber: "TRN-2N2222A",
			Manufacturer: "ON Semiconductor", Description: "40V 800mA general purpose NPN",
			Category: domain.CategoryTransistors, Location: "Shelf B2",
			Quantity: 640, LowStockThreshold: 100, UnitPrice: price("0.08"),
			LastOutwardDate: recent,
		},
		{
			Name: "NE555 Timer", PartNumber: "IC-NE555P",
			Manufacturer: "Texas Instruments", Description: "Precision timer, DIP-8",
			Category: domain.CategoryICs, Location: "Drawer C1",
			Quantity: 58, LowStockThreshold: 25, UnitPrice: price("0.42"),
			DatasheetURL:    "https://www.ti.com/lit/ds/symlink/ne555.pdf",
			LastOutwardDate: recent,
		},
		{
			Name: "ATmega328P Microcontroller", PartNumber: "IC-ATMEGA328P-PU",
			Manufacturer: "Microchip", Description: "8-bit AVR MCU, 32KB flash, DIP-28",
			Category: domain.CategoryMicrocontrollers, Location: "Drawer C2",
			Quantity: 14, LowStockThreshold: 20, UnitPrice: price("2.60"),
			DatasheetURL:    "https://ww1.microchip.com/downloads/en/DeviceDoc/ATmega328P.pdf",
			LastOutwardDate: recent,
		},
		{
			Name: "BME280 Environmental Sensor", PartNumber: "SEN-BME280",
			Manufacturer: "Bosch", Description: "Temperature, humidity and pressure sensor breakout",
			Category: domain.CategorySensors, Location: "Drawer C3",
			Quantity: 22, LowStockThreshold: 10, UnitPrice: price("4.90"),
			LastOutwardDate: stale,
		},
		{
			Name: "2.54mm Pin Header 40P", PartNumber: "CON-HDR-40P",
			Manufacturer: "Amphenol", Description: "Single row breakaway male header",
			Category: domain.CategoryConnectors, Location: "Shelf D1",
			Quantity: 900, LowStockThreshold: 150, UnitPrice: price("0.15"),
			LastOutwardDate: recent,
		},
		{
			Name: "5mm Red LED", PartNumber: "LED-5MM-RED",
			Manufacturer: "Kingbright", Description: "Diffused red LED, 20mA",
			Category: domain.CategoryLEDs, Location: "Shelf D2",
			Quantity: 36, LowStockThreshold: 250, UnitPrice: price("0.05"),
			LastOutwardDate: recent,
		},
		{
			Name: "Tactile Push Button", PartNumber: "SW-TACT-6MM",
			Manufacturer: "Omron", Description: "6x6mm momentary tactile switch",
			Category: domain.CategorySwitches, Location: "Shelf D3",
			Quantity: 480, LowStockThreshold: 100, UnitPrice: price("0.10"),
			LastOutwardDate: stale,
		},
		{
			Name: "22AWG Hookup Wire Red", PartNumber: "WIR-22AWG-RED",
			Manufacturer: "Alpha Wire", Description: "22AWG stranded hookup wire, 30m spool",
			Category: domain.CategoryCables, Location: "Shelf E1",
			Quantity: 0, LowStockThreshold: 30, UnitPrice: price("0.25"),
			LastOutwardDate: stale,
		},
		{
			Name: "Jumper Wire Kit", PartNumber: "MISC-JMP-120",
			Manufacturer: "Generic", Description: "120pc male/female dupont jumper set",
			Category: domain.CategoryOther, Location: "Shelf E2",
			Quantity: 45, LowStockThreshold: 10, UnitPrice: price("3.20"),
			LastOutwardDate: recent,
		},
	}

	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].CreatedAt = now.AddDate(0, 0, -(len(items) - i))
		items[i].UpdatedAt = items[i].CreatedAt
	}
	return items
}

// Logs returns demo activity covering the trailing month so the
// movement chart is populated on first boot.
func Logs(components []domain.Component, users []userdomain.User) []activitydomain.LogEntry {
	if len(components) == 0 || len(users) == 0 {
		return nil
	}

	now := time.Now()
	actor := users[0]

	entry := func(daysAgo int, action string, c domain.Component, qty int, details string) activitydomain.LogEntry {
		return activitydomain.LogEntry{
			ID:            uuid.NewString(),
			Action:        action,
			ComponentID:   c.ID,
			ComponentName: c.Name,
			Quantity:      qty,
			Timestamp:     now.AddDate(0, 0, -daysAgo),
			UserName:      actor.Name,
			UserAvatar:    actor.Avatar,
			Details:       details,
		}
	}

	entries := []activitydomain.LogEntry{
		entry(27, activitydomain.ActionAdded, components[0], 1000, "Restock from supplier order"),
		entry(24, activitydomain.ActionIssued, components[5], 12, "Timer workshop kits"),
		entry(21, activitydomain.ActionAdded, components[6], 25, "Restock from supplier order"),
		entry(17, activitydomain.ActionIssued, components[1], 40, "Sensor board assembly run"),
		entry(14, activitydomain.ActionIssued, components[9], 60, "Status indicator panels"),
		entry(10, activitydomain.ActionAdded, components[8], 200, "Restock from supplier order"),
		entry(7, activitydomain.ActionIssued, components[4], 30, "Amplifier lab session"),
		entry(5, activitydomain.ActionIssued, components[6], 6, "Prototype controller boards"),
		entry(2, activitydomain.ActionAdded, components[12], 20, "Restock from supplier order"),
		entry(1, activitydomain.ActionIssued, components[0], 150, "PCB assembly batch"),
	}
	return entries
}

// Load resets the given repositories to the demo dataset. Used by the
// in-memory backend on startup.
func Load(
	components domain.ComponentRepository,
	logs activitydomain.LogRepository,
	users userdomain.UserRepository,
) error {
	seededUsers := Users()
	for _, u := range seededUsers {
		if err := users.Create(&u); err != nil {
			return err
		}
	}

	seededComponents := Components()
	// Create prepends, so insert in reverse to preserve the list order.
	for i := len(seededComponents) - 1; i >= 0; i-- {
		if err := components.Create(&seededComponents[i]); err != nil {
			return err
		}
	}

	for _, e := range Logs(seededComponents, seededUsers) {
		if err := logs.Append(&e); err != nil {
			return err
		}
	}

	logger.Logger.Info().
		Int("users", len(seededUsers)).
		Int("components", len(seededComponents)).
		Msg("Demo dataset loaded")
	return nil
}

// LoadIfEmpty seeds the repositories only when no users exist yet.
// Used by the Postgres backend so restarts never duplicate the demo
// dataset.
func LoadIfEmpty(
	components domain.ComponentRepository,
	logs activitydomain.LogRepository,
	users userdomain.UserRepository,
) error {
	count, err := users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Logger.Debug().Int64("users", count).Msg("Database already seeded")
		return nil
	}
	return Load(components, logs, users)
}
