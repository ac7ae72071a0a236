package misc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type Tip struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

type TipsManager struct {
	Tips       []*Tip
	TopicsTips map[string][]*Tip
}

func NewTipsManager(tipsCsvReader *csv.Reader) (*TipsManager, error) {
	tm := &TipsManager{}
	tm.TopicsTips = make(map[string][]*Tip)

	log.Println("reading tips CSV ...")

	tipsCsvReader.Comma = ';'
	for {
		record, err := tipsCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		// TITLE;TEXT;TOPIC
		tip := &Tip{
			Title: record[0],
			Text:  record[1],
			Topic: record[2],
		}
		tm.Tips = append(tm.Tips, tip)
		tm.TopicsTips[tip.Topic] = append(tm.TopicsTips[tip.Topic], tip)
	}

	if len(tm.Tips) == 0 {
		return nil, errors.New("no tips found in CSV")
	}

	log.Printf("tips CSV read %d tips", len(tm.Tips))

	return tm, nil
}

func (tm *TipsManager) RandomTip() *Tip {
	return tm.Tips[rand.Intn(len(tm.Tips))]
}
