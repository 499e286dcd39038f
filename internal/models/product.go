package models

import (
	"encoding/json"
	"time"
)

// Product reprend le schéma legacy du catalogue bijouterie : deux représentations
// de catégorie (SubCat_Id numérique et SubCategory texte libre) et plusieurs champs
// de prix coexistent. L'API renvoie les champs tels quels, la normalisation se fait
// dans le package catalog.
type Product struct {
	LotNo         string         `json:"LotNo" db:"lot_no"`
	ItemNo        string         `json:"ItemNo" db:"item_no"`
	Description   string         `json:"Description" db:"description"`
	SubCategory   string         `json:"SubCategory,omitempty" db:"sub_category"`
	SubCatID      int            `json:"SubCat_Id,omitempty" db:"sub_cat_id"`
	GorS          string         `json:"GorS,omitempty" db:"gors"`
	DisplayPrice  float64        `json:"DisplayPrice,omitempty" db:"display_price"`
	Price         float64        `json:"Price,omitempty" db:"price"`
	OAmt          float64        `json:"OAmt,omitempty" db:"o_amt"`
	OfferPrice    float64        `json:"OfferPrice,omitempty" db:"offer_price"`
	DiscountPrice float64        `json:"DiscountPrice,omitempty" db:"discount_price"`
	GWt           float64        `json:"GWt,omitempty" db:"g_wt"`
	TotWt         float64        `json:"TotWt,omitempty" db:"tot_wt"`
	Tunch         string         `json:"Tunch,omitempty" db:"tunch"`
	Sold          string         `json:"Sold,omitempty" db:"sold"`
	Removed       bool           `json:"removed,omitempty" db:"removed"`
	Images        []ProductImage `json:"images,omitempty" db:"image_paths"`
	CreatedAt     *time.Time     `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty" db:"updated_at"`
}

// Key retourne l'identifiant canonique d'un produit : LotNo, sinon ItemNo.
// À utiliser partout où l'identité compte (panier, wishlist, dédoublonnage).
func (p Product) Key() string {
	if p.LotNo != "" {
		return p.LotNo
	}
	return p.ItemNo
}

// ImagePaths retourne les chemins bruts (stockage ScyllaDB et indexation Elastic).
func (p Product) ImagePaths() []string {
	paths := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		paths = append(paths, img.FilePath)
	}
	return paths
}

// SetImagePaths reconstruit Images depuis une liste de chemins (lecture ScyllaDB).
func (p *Product) SetImagePaths(paths []string) {
	p.Images = p.Images[:0]
	for _, path := range paths {
		p.Images = append(p.Images, ProductImage{FilePath: path})
	}
}

// ProductImage accepte les deux formes historiques du champ images :
// un objet {"FilePath": "..."} ou une chaîne nue.
type ProductImage struct {
	FilePath string `json:"FilePath"`
}

func (pi *ProductImage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		pi.FilePath = s
		return nil
	}

	var obj struct {
		FilePath string `json:"FilePath"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	pi.FilePath = obj.FilePath
	return nil
}
