// Package geodata seeds the wilaya/daira/commune tree from the bundled
// algeria_cities.json dataset. The dataset is flat rows of
// {wilaya_name, daira_name, commune_name}; grouping and de-duplication
// happen here before anything touches the database.
package geodata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
)

type Entry struct {
	WilayaName  string `json:"wilaya_name"`
	DairaName   string `json:"daira_name"`
	CommuneName string `json:"commune_name"`
}

type WilayaNode struct {
	Name   string
	Dairas []DairaNode
}

type DairaNode struct {
	Name     string
	Communes []string
}

// Load reads the dataset file. Rows with a blank level are dropped; names
// are trimmed so dataset whitespace never leaks into dropdowns.
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geo dataset: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse geo dataset: %w", err)
	}

	cleaned := entries[:0]
	for _, e := range entries {
		e.WilayaName = strings.TrimSpace(e.WilayaName)
		e.DairaName = strings.TrimSpace(e.DairaName)
		e.CommuneName = strings.TrimSpace(e.CommuneName)
		if e.WilayaName == "" || e.DairaName == "" || e.CommuneName == "" {
			continue
		}
		cleaned = append(cleaned, e)
	}
	return cleaned, nil
}

// Group builds the three-level tree, de-duplicating wilayas by name and
// dairas by (wilaya, daira) in first-seen order.
func Group(entries []Entry) []WilayaNode {
	var tree []WilayaNode
	wilayaIdx := make(map[string]int)
	dairaIdx := make(map[string]int)

	for _, e := range entries {
		wi, ok := wilayaIdx[e.WilayaName]
		if !ok {
			wi = len(tree)
			wilayaIdx[e.WilayaName] = wi
			tree = append(tree, WilayaNode{Name: e.WilayaName})
		}

		dairaKey := e.WilayaName + "\x00" + e.DairaName
		di, ok := dairaIdx[dairaKey]
		if !ok {
			di = len(tree[wi].Dairas)
			dairaIdx[dairaKey] = di
			tree[wi].Dairas = append(tree[wi].Dairas, DairaNode{Name: e.DairaName})
		}

		tree[wi].Dairas[di].Communes = append(tree[wi].Dairas[di].Communes, e.CommuneName)
	}
	return tree
}

// Seed loads the dataset into an empty database. A populated wilayas table
// means the tree was already seeded and the file is left alone.
func Seed(db *gorm.DB, path string, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Wilaya{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count wilayas: %w", err)
	}
	if count > 0 {
		logger.Info("Geo hierarchy already seeded", zap.Int64("wilayas", count))
		return nil
	}

	entries, err := Load(path)
	if err != nil {
		return err
	}
	tree := Group(entries)

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, w := range tree {
			wilaya := models.Wilaya{Name: w.Name}
			if err := tx.Create(&wilaya).Error; err != nil {
				return err
			}
			for _, d := range w.Dairas {
				daira := models.Daira{Name: d.Name, WilayaID: wilaya.ID}
				if err := tx.Create(&daira).Error; err != nil {
					return err
				}
				for _, name := range d.Communes {
					commune := models.Commune{Name: name, DairaID: daira.ID}
					if err := tx.Create(&commune).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed geo hierarchy: %w", err)
	}

	logger.Info("Seeded geo hierarchy",
		zap.Int("wilayas", len(tree)),
		zap.Int("rows", len(entries)))
	return nil
}
