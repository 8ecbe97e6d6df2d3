package model

const TableTokenFeatures = "token_features"

// One row per feature selected in the features section
type TokenFeature struct {
	Id           int    `gorm:"primaryKey" json:"id"`
	SubmissionId string `json:"submission_id"`
	FeatureName  string `json:"feature_name"`
}

func (TokenFeature) TableName() string {
	return TableTokenFeatures
}
