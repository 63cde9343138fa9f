package models

func ModelsToAutoMigrate() []interface{} {
	return []interface{}{
		&AttachmentRef{},
	}
}
