package Suppliers

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"Garage/Models"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	"gorm.io/gorm"
)

// FetchPriceList scrapes a supplier's published price list page and
// replaces their stored quotes. The page is expected to carry a table
// whose rows are <td>code</td><td>description</td><td>price</td>;
// vendors that deviate get row-level skips, not a failed fetch.
func FetchPriceList(db *gorm.DB, supplier *Models.Supplier) (int, error) {
	client := colly.NewCollector()
	client.WithTransport(&http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}})
	client.SetRequestTimeout(30 * time.Second)

	fetchedAt := time.Now()
	var quotes []Models.SupplierQuote

	client.OnHTML("table", func(h *colly.HTMLElement) {
		h.ForEach("tr", func(_ int, tr *colly.HTMLElement) {
			quote, ok := parseQuoteRow(tr)
			if !ok {
				return
			}
			quote.SupplierID = supplier.ID
			quote.FetchedAt = fetchedAt
			quotes = append(quotes, quote)
		})
	})

	if err := client.Visit(supplier.PriceListURL); err != nil {
		return 0, fmt.Errorf("error fetching price list for %s: %w", supplier.Name, err)
	}

	if len(quotes) == 0 {
		return 0, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("supplier_id = ?", supplier.ID).Delete(&Models.SupplierQuote{}).Error; err != nil {
			return err
		}
		return tx.Create(&quotes).Error
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Fetched %d quotes from %s", len(quotes), supplier.Name)
	return len(quotes), nil
}

func parseQuoteRow(tr *colly.HTMLElement) (Models.SupplierQuote, bool) {
	var quote Models.SupplierQuote
	valid := false

	tr.ForEach("td", func(i int, td *colly.HTMLElement) {
		text := strings.TrimSpace(td.Text)
		switch i {
		case 0:
			quote.MaterialCode = text
		case 1:
			quote.Description = text
		case 2:
			price, err := strconv.ParseFloat(strings.TrimPrefix(text, "$"), 64)
			if err == nil && price > 0 {
				quote.Price = price
				valid = true
			}
		}
	})

	return quote, valid && quote.MaterialCode != ""
}

// ParsePriceListDocument extracts quotes from an already fetched HTML
// document. FetchPriceList uses the network path; this entry point
// exists for vendors that email their lists as HTML attachments.
func ParsePriceListDocument(doc *goquery.Document, supplierID uint) []Models.SupplierQuote {
	fetchedAt := time.Now()
	var quotes []Models.SupplierQuote

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		code := strings.TrimSpace(cells.Eq(0).Text())
		description := strings.TrimSpace(cells.Eq(1).Text())
		priceText := strings.TrimPrefix(strings.TrimSpace(cells.Eq(2).Text()), "$")

		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil || price <= 0 || code == "" {
			return
		}

		quotes = append(quotes, Models.SupplierQuote{
			SupplierID:   supplierID,
			MaterialCode: code,
			Description:  description,
			Price:        price,
			FetchedAt:    fetchedAt,
		})
	})

	return quotes
}

// PriceComparison pairs a catalog material with the cheapest known
// supplier quote for its code.
type PriceComparison struct {
	Material  Models.Material       `json:"material"`
	BestQuote *Models.SupplierQuote `json:"best_quote,omitempty"`
	Saving    float64               `json:"saving"`
}

// CompareLowStock returns, for every material at or below its warning
// level, the cheapest supplier quote on record.
func CompareLowStock(db *gorm.DB) ([]PriceComparison, error) {
	var materials []Models.Material
	err := db.Where("stock_quantity <= min_stock_level").Order("stock_quantity ASC").Find(&materials).Error
	if err != nil {
		return nil, err
	}

	comparisons := make([]PriceComparison, 0, len(materials))
	for _, material := range materials {
		comparison := PriceComparison{Material: material}

		var quote Models.SupplierQuote
		err := db.Preload("Supplier").
			Where("material_code = ?", material.MaterialCode).
			Order("price ASC").
			First(&quote).Error
		if err == nil {
			comparison.BestQuote = &quote
			comparison.Saving = material.UnitPrice - quote.Price
		}

		comparisons = append(comparisons, comparison)
	}

	return comparisons, nil
}
