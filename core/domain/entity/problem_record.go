package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DiD92/wwyd/framework/mahjong"
	"github.com/DiD92/wwyd/framework/wwyd"
)

// ProblemRecord 一道已生成的何切题
type ProblemRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PublicID  string             `bson:"public_id" json:"id"`
	Serial    int64              `bson:"serial" json:"serial"`
	HandName  string             `bson:"hand_name,omitempty" json:"hand,omitempty"`
	Notation  string             `bson:"notation" json:"notation"`
	Tiles     []string           `bson:"tiles" json:"tiles"`
	Kans      []string           `bson:"kans,omitempty" json:"kans,omitempty"`
	Shanten   int                `bson:"shanten" json:"shanten"`
	Shape     string             `bson:"shape" json:"shape"`
	Discards  []DiscardRecord    `bson:"discards" json:"discards"`
	Seed      int64              `bson:"seed" json:"seed"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// DiscardRecord 一个打牌选项及其进张
type DiscardRecord struct {
	Tile    string   `bson:"tile" json:"tile"`
	Score   int      `bson:"score" json:"score"`
	Shanten int      `bson:"shanten" json:"shanten"`
	Accepts []string `bson:"accepts" json:"accepts"`
}

// NewProblemRecord 由生成结果构建记录，ID 与序号由存储层填写
func NewProblemRecord(handName string, p *wwyd.Problem) *ProblemRecord {
	discards := make([]DiscardRecord, 0, len(p.Discards))
	for _, d := range p.Discards {
		accepts := make([]string, 0, len(d.Accepts))
		for _, k := range d.Accepts {
			accepts = append(accepts, k.String())
		}
		discards = append(discards, DiscardRecord{
			Tile:    d.Tile.String(),
			Score:   d.Score,
			Shanten: d.Shanten,
			Accepts: accepts,
		})
	}

	return &ProblemRecord{
		HandName:  handName,
		Notation:  mahjong.Notation(p.Hand),
		Tiles:     labels(p.Hand),
		Kans:      labels(p.Kans),
		Shanten:   p.Shanten,
		Shape:     p.Shape.String(),
		Discards:  discards,
		Seed:      p.Seed,
		CreatedAt: time.Now(),
	}
}

func labels(tiles []mahjong.Tile) []string {
	if len(tiles) == 0 {
		return nil
	}
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.String()
	}
	return out
}
