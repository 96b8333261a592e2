package entity

import "time"

type Photo struct {
	ID         string
	ReviewID   *string
	VendorID   string
	BerryID    *string
	PhotoURL   *string
	Thumbnail  *string
	Caption    *string
	UploadedBy string
	UploadedAt time.Time
}

type PhotoUpdate struct {
	ReviewID  *string
	VendorID  *string
	BerryID   *string
	PhotoURL  *string
	Thumbnail *string
	Caption   *string
}

func (u PhotoUpdate) IsEmpty() bool {
	return u == PhotoUpdate{}
}

// PhotoFile is an uploaded image on its way to object storage.
type PhotoFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        []byte
}

// PhotoUpload is a multipart upload: the file plus the metadata of the row
// created for it.
type PhotoUpload struct {
	VendorID string
	BerryID  *string
	ReviewID *string
	Caption  *string
	File     *PhotoFile
}
