package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Instructor  string         `json:"instructor" gorm:"not null"`
	VideoLinks  datatypes.JSON `json:"videoLinks" gorm:"default:'[]'"`
}

// VideoLinkList decodes the stored JSON array of video URLs.
func (c *Course) VideoLinkList() ([]string, error) {
	links := []string{}
	if len(c.VideoLinks) == 0 {
		return links, nil
	}
	if err := json.Unmarshal(c.VideoLinks, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// SetVideoLinks encodes the given URLs into the JSON column.
func (c *Course) SetVideoLinks(links []string) error {
	if links == nil {
		links = []string{}
	}
	data, err := json.Marshal(links)
	if err != nil {
		return err
	}
	c.VideoLinks = datatypes.JSON(data)
	return nil
}
