package model

// Post belongs to the member feed. RequiredTier gates visibility: a member
// sees a post only when their tier passes the gate. Guests are treated as
// free.
type Post struct {
	UUIDBase
	AuthorID     uint      `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author       User      `gorm:"foreignKey:AuthorID" json:"author"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	ImageURL     string    `gorm:"size:255" json:"imageUrl"`
	RequiredTier Tier      `gorm:"type:enum('free','brigade','fraternity','guild');default:'free'" json:"requiredTier"`
	IsPinned     bool      `gorm:"default:false" json:"isPinned"`
	Comments     []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

type Comment struct {
	UUIDBase
	PostID   string `gorm:"index;type:varchar(36)" json:"postId"`
	AuthorID uint   `gorm:"index;type:bigint unsigned" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}

// PostLike is unique per user+post; liking toggles.
type PostLike struct {
	BaseModel
	UserID uint   `gorm:"uniqueIndex:idx_user_post;type:bigint unsigned" json:"userId"`
	PostID string `gorm:"uniqueIndex:idx_user_post;size:36" json:"postId"`
}

func (PostLike) TableName() string {
	return "post_likes"
}
