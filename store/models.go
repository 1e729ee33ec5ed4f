package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status values for LeaveRequest.
const (
	STATUS_PENDING  = "pending"
	STATUS_APPROVED = "approved"
	STATUS_REJECTED = "rejected"
)

// Status values for MedicineRequest.
const (
	STATUS_CONFIRMED = "confirmed"
)

// Sender roles for Message.
const (
	ROLE_PARENT  = "parent"
	ROLE_TEACHER = "teacher"
)

// Media types for AlbumItem.
const (
	MEDIA_PHOTO = "photo"
	MEDIA_VIDEO = "video"
)

// Notification types.
const (
	NOTIFICATION_PICKUP   = "pickup"
	NOTIFICATION_NOTICE   = "notice"
	NOTIFICATION_MEDICINE = "medicine"
	NOTIFICATION_GENERAL  = "general"
)

// The enumerated string fields above are documented closed sets but are not
// rejected when out of set, to stay compatible with already stored documents.

type Parent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required"`
	Phone     *string            `bson:"phone" json:"phone"`
	AvatarUrl *string            `bson:"avatar_url" json:"avatar_url"`
}

type Teacher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required"`
	Phone     *string            `bson:"phone" json:"phone"`
	AvatarUrl *string            `bson:"avatar_url" json:"avatar_url"`
	ClassId   *string            `bson:"class_id" json:"class_id"`
}

type Child struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Nickname  *string            `bson:"nickname" json:"nickname"`
	Birthdate *string            `bson:"birthdate" json:"birthdate"`
	ParentId  *string            `bson:"parent_id" json:"parent_id"`
	ClassId   *string            `bson:"class_id" json:"class_id"`
	AvatarUrl *string            `bson:"avatar_url" json:"avatar_url"`
}

type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildId    *string            `bson:"child_id" json:"child_id"`
	SenderRole string             `bson:"sender_role" json:"sender_role" validate:"required"`
	SenderName *string            `bson:"sender_name" json:"sender_name"`
	Text       *string            `bson:"text" json:"text"`
	ImageUrl   *string            `bson:"image_url" json:"image_url"`
	Timestamp  *time.Time         `bson:"timestamp" json:"timestamp"`
}

type DailyLog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildId  *string            `bson:"child_id" json:"child_id"`
	Date     string             `bson:"date" json:"date" validate:"required"`
	Activity *string            `bson:"activity" json:"activity"`
	Meals    *string            `bson:"meals" json:"meals"`
	Health   *string            `bson:"health" json:"health"`
	Notes    *string            `bson:"notes" json:"notes"`
}

type LeaveRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildId     *string            `bson:"child_id" json:"child_id"`
	Date        string             `bson:"date" json:"date" validate:"required"`
	Reason      *string            `bson:"reason" json:"reason"`
	Status      string             `bson:"status" json:"status"`
	TeacherNote *string            `bson:"teacher_note" json:"teacher_note"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type MedicineRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildId     *string            `bson:"child_id" json:"child_id"`
	DrugName    string             `bson:"drug_name" json:"drug_name" validate:"required"`
	Dosage      string             `bson:"dosage" json:"dosage" validate:"required"`
	Notes       *string            `bson:"notes" json:"notes"`
	PhotoUrl    *string            `bson:"photo_url" json:"photo_url"`
	Status      string             `bson:"status" json:"status"`
	ConfirmedAt *time.Time         `bson:"confirmed_at" json:"confirmed_at"`
	ConfirmedBy *string            `bson:"confirmed_by" json:"confirmed_by"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type AlbumItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildId   *string            `bson:"child_id" json:"child_id"`
	ClassId   *string            `bson:"class_id" json:"class_id"`
	MediaUrl  string             `bson:"media_url" json:"media_url" validate:"required"`
	MediaType string             `bson:"media_type" json:"media_type"`
	Caption   *string            `bson:"caption" json:"caption"`
	TakenAt   *time.Time         `bson:"taken_at" json:"taken_at"`
}

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildId   *string            `bson:"child_id" json:"child_id"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Body      *string            `bson:"body" json:"body"`
	Type      string             `bson:"type" json:"type"`
	CreatedAt *time.Time         `bson:"created_at" json:"created_at"`
}

type PickupCode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChildId   *string            `bson:"child_id" json:"child_id"`
	Code      string             `bson:"code" json:"code" validate:"required"`
	ExpiresAt *time.Time         `bson:"expires_at" json:"expires_at"`
}
