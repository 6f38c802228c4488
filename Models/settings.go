package Models

import (
	"log"
	"os"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Settings holds shop-level tunables loaded from settings.json5.
// Missing file or fields fall back to the defaults below.
type Settings struct {
	ShopName           string  `json:"shop_name"`
	OrderNumberPrefix  string  `json:"order_number_prefix"`
	OvertimeMultiplier float64 `json:"overtime_multiplier"`
	LowStockThreshold  int     `json:"low_stock_threshold"`
	PhotoDir           string  `json:"photo_dir"`
}

var AppSettings = Settings{
	ShopName:           "Garage",
	OrderNumberPrefix:  "RO",
	OvertimeMultiplier: 1.5,
	LowStockThreshold:  5,
	PhotoDir:           "OrderPhotos",
}

// LoadSettings overlays settings.json5 values onto the defaults.
func LoadSettings(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading settings file %s: %v\n", path, err)
		}
		return
	}

	if err := json5.Unmarshal(data, &AppSettings); err != nil {
		log.Printf("Error parsing settings file %s: %v\n", path, err)
	}
}
