package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// memberDocument is the stored shape of a member. The document ID is the
// external ID, so the reconciliation lookup is a direct key read.
// LatestScore stays a pointer: Firestore preserves null, so a zero score
// round-trips without the sentinel encoding older storage layers needed.
type memberDocument struct {
	ExternalID             string    `firestore:"external_id"`
	Name                   string    `firestore:"name"`
	Industry               string    `firestore:"industry"`
	MembershipType         string    `firestore:"membership_type"`
	MembershipLevel        string    `firestore:"membership_level"`
	MembershipStatus       string    `firestore:"membership_status"`
	LatestScore            *float64  `firestore:"latest_score"`
	ExternalEcoRecognition bool      `firestore:"external_eco_recognition"`
	Country                string    `firestore:"country"`
	Region                 string    `firestore:"region"`
	LocationName           string    `firestore:"location_name"`
	Address                string    `firestore:"address"`
	Address2               string    `firestore:"address2"`
	Lat                    float64   `firestore:"lat"`
	Lng                    float64   `firestore:"lng"`
	Website                string    `firestore:"website"`
	Email                  string    `firestore:"email"`
	Phone                  string    `firestore:"phone"`
	LogoSourceURL          string    `firestore:"logo_source_url"`
	LogoLocalFilename      string    `firestore:"logo_local_filename"`
	PublishState           string    `firestore:"publish_state"`
	CategoryTags           []string  `firestore:"category_tags"`
	Archived               bool      `firestore:"archived"`
	LastSeenAt             time.Time `firestore:"last_seen_at"`
	CreatedAt              time.Time `firestore:"created_at"`
	UpdatedAt              time.Time `firestore:"updated_at"`
}

func toDocument(m *model.Member) *memberDocument {
	tags := make([]string, len(m.CategoryTags))
	for i, tag := range m.CategoryTags {
		tags[i] = tag.String()
	}

	return &memberDocument{
		ExternalID:             m.ExternalID.String(),
		Name:                   m.Name,
		Industry:               m.Industry,
		MembershipType:         m.MembershipType.String(),
		MembershipLevel:        m.MembershipLevel.String(),
		MembershipStatus:       m.MembershipStatus.String(),
		LatestScore:            m.LatestScore,
		ExternalEcoRecognition: m.ExternalEcoRecognition,
		Country:                m.Location.Country,
		Region:                 m.Location.Region,
		LocationName:           m.Location.Name,
		Address:                m.Location.Address,
		Address2:               m.Location.Address2,
		Lat:                    m.Location.Lat,
		Lng:                    m.Location.Lng,
		Website:                m.Contact.Website,
		Email:                  m.Contact.Email,
		Phone:                  m.Contact.Phone,
		LogoSourceURL:          m.LogoSourceURL,
		LogoLocalFilename:      m.LogoLocalFilename,
		PublishState:           m.PublishState.String(),
		CategoryTags:           tags,
		Archived:               m.Archived,
		LastSeenAt:             m.LastSeenAt,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func (d *memberDocument) toModel() *model.Member {
	tags := make([]types.CategoryTag, len(d.CategoryTags))
	for i, tag := range d.CategoryTags {
		tags[i] = types.CategoryTag(tag)
	}

	return &model.Member{
		ExternalID:             types.MemberID(d.ExternalID),
		Name:                   d.Name,
		Industry:               d.Industry,
		MembershipType:         types.MembershipType(d.MembershipType),
		MembershipLevel:        types.MembershipLevel(d.MembershipLevel),
		MembershipStatus:       types.MembershipStatus(d.MembershipStatus),
		LatestScore:            d.LatestScore,
		ExternalEcoRecognition: d.ExternalEcoRecognition,
		Location: model.Location{
			Country:  d.Country,
			Region:   d.Region,
			Name:     d.LocationName,
			Address:  d.Address,
			Address2: d.Address2,
			Lat:      d.Lat,
			Lng:      d.Lng,
		},
		Contact: model.Contact{
			Website: d.Website,
			Email:   d.Email,
			Phone:   d.Phone,
		},
		LogoSourceURL:     d.LogoSourceURL,
		LogoLocalFilename: d.LogoLocalFilename,
		PublishState:      types.PublishState(d.PublishState),
		CategoryTags:      tags,
		Archived:          d.Archived,
		LastSeenAt:        d.LastSeenAt,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type memberRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMemberRepository(client *firestore.Client) *memberRepository {
	return &memberRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *memberRepository) membersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_members"
	}
	return "members"
}

func (r *memberRepository) Get(ctx context.Context, id types.MemberID) (*model.Member, error) {
	docRef := r.client.Collection(r.membersCollection()).Doc(id.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrMemberNotFound, "no such member", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get member", goerr.V("id", id))
	}

	var memberDoc memberDocument
	if err := doc.DataTo(&memberDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal member", goerr.V("id", id))
	}

	return memberDoc.toModel(), nil
}

func (r *memberRepository) Put(ctx context.Context, member *model.Member) error {
	if err := member.ExternalID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid member ID")
	}

	now := time.Now().UTC()
	doc := toDocument(member)
	doc.UpdatedAt = now
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}

	docRef := r.client.Collection(r.membersCollection()).Doc(member.ExternalID.String())
	if _, err := docRef.Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put member", goerr.V("id", member.ExternalID))
	}

	return nil
}

func (r *memberRepository) List(ctx context.Context) ([]*model.Member, error) {
	iter := r.client.Collection(r.membersCollection()).Documents(ctx)
	defer iter.Stop()

	var members []*model.Member
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate members")
		}

		var memberDoc memberDocument
		if err := doc.DataTo(&memberDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal member")
		}

		members = append(members, memberDoc.toModel())
	}

	return members, nil
}

func (r *memberRepository) Archive(ctx context.Context, id types.MemberID) error {
	docRef := r.client.Collection(r.membersCollection()).Doc(id.String())

	updates := []firestore.Update{
		{Path: "archived", Value: true},
		{Path: "updated_at", Value: time.Now().UTC()},
	}
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrMemberNotFound, "no such member", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to archive member", goerr.V("id", id))
	}

	return nil
}
