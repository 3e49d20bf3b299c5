// Package document implements the project document store on Cloud
// Firestore, the catalog's hosted document database.
package document

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"atelier/config"
	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/errors"
)

const defaultCollection = "projects"

type projectStore struct {
	client     *firestore.Client
	collection string
}

// StoreParams holds dependencies for the project store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
}

// NewProjectStore connects to Firestore through the Firebase Admin SDK
// and returns the ProjectStore implementation. The client closes on
// shutdown.
func NewProjectStore(params StoreParams) (repository.ProjectStore, error) {
	cfg := params.Config
	if cfg.Firestore == nil {
		return nil, errors.New("firestore configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	collection := cfg.Firestore.Collection
	if collection == "" {
		collection = defaultCollection
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return &projectStore{client: client, collection: collection}, nil
}

// projectDoc is the stored document shape. Assets are plain URLs here:
// pending refs never reach the store.
type projectDoc struct {
	ID        string            `firestore:"id"`
	Name      string            `firestore:"name"`
	Category  string            `firestore:"category"`
	Price     float64           `firestore:"price"`
	TotalMP   float64           `firestore:"totalMP"`
	UsableMP  float64           `firestore:"usableMP"`
	Images    []string          `firestore:"images"`
	Floors    []floorDoc        `firestore:"floors"`
	Plans     map[string]string `firestore:"plans"`
	CreatedAt time.Time         `firestore:"createdAt"`
	UpdatedAt time.Time         `firestore:"updatedAt,omitempty"`
	CreatedBy string            `firestore:"createdBy"`
}

type floorDoc struct {
	Type  string    `firestore:"type"`
	Rooms []roomDoc `firestore:"rooms"`
}

type roomDoc struct {
	RoomType string  `firestore:"roomType"`
	MP       float64 `firestore:"mp"`
}

func (s *projectStore) Add(ctx context.Context, project *entity.Project) (string, error) {
	doc, err := docFromEntity(project)
	if err != nil {
		return "", err
	}

	ref, _, err := s.client.Collection(s.collection).Add(ctx, doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to add project document")
	}

	return ref.ID, nil
}

func (s *projectStore) Get(ctx context.Context, docID string) (*entity.Project, error) {
	snap, err := s.client.Collection(s.collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to read project document")
	}

	return entityFromSnapshot(snap)
}

func (s *projectStore) Update(ctx context.Context, docID string, project *entity.Project) error {
	doc, err := docFromEntity(project)
	if err != nil {
		return err
	}

	// Field-merge: creation metadata on the existing document survives.
	fields := map[string]any{
		"name":      doc.Name,
		"category":  doc.Category,
		"price":     doc.Price,
		"totalMP":   doc.TotalMP,
		"usableMP":  doc.UsableMP,
		"images":    doc.Images,
		"floors":    doc.Floors,
		"plans":     doc.Plans,
		"updatedAt": doc.UpdatedAt,
	}

	if _, err := s.client.Collection(s.collection).Doc(docID).Set(ctx, fields, firestore.MergeAll); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrDocumentNotFound
		}

		return errors.Wrap(err, "failed to update project document")
	}

	return nil
}

func (s *projectStore) Delete(ctx context.Context, docID string) error {
	if _, err := s.client.Collection(s.collection).Doc(docID).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete project document")
	}

	return nil
}

func (s *projectStore) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Project, error) {
	iter := s.client.Collection(s.collection).Where("category", "==", string(category)).Documents(ctx)

	return collect(iter)
}

func (s *projectStore) List(ctx context.Context) ([]*entity.Project, error) {
	iter := s.client.Collection(s.collection).Documents(ctx)

	return collect(iter)
}

func (s *projectStore) FindByName(ctx context.Context, name string) (*entity.Project, error) {
	iter := s.client.Collection(s.collection).Where("name", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query project by name")
	}

	return entityFromSnapshot(snap)
}

func collect(iter *firestore.DocumentIterator) ([]*entity.Project, error) {
	defer iter.Stop()

	var projects []*entity.Project
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate project documents")
		}

		project, err := entityFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func docFromEntity(p *entity.Project) (*projectDoc, error) {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img.Pending() {
			return nil, errors.New("pending asset reached the document store")
		}
		images = append(images, img.URL())
	}

	plans := make(map[string]string, len(p.Plans))
	for floorType, plan := range p.Plans {
		if plan.Pending() {
			return nil, errors.New("pending plan reached the document store")
		}
		plans[string(floorType)] = plan.URL()
	}

	floors := make([]floorDoc, 0, len(p.Floors))
	for _, f := range p.Floors {
		rooms := make([]roomDoc, 0, len(f.Rooms))
		for _, r := range f.Rooms {
			rooms = append(rooms, roomDoc{RoomType: string(r.RoomType), MP: r.MP})
		}
		floors = append(floors, floorDoc{Type: string(f.Type), Rooms: rooms})
	}

	return &projectDoc{
		ID:        p.ID,
		Name:      p.Name,
		Category:  string(p.Category),
		Price:     p.Price,
		TotalMP:   p.TotalMP,
		UsableMP:  p.UsableMP,
		Images:    images,
		Floors:    floors,
		Plans:     plans,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		CreatedBy: p.CreatedBy,
	}, nil
}

func entityFromSnapshot(snap *firestore.DocumentSnapshot) (*entity.Project, error) {
	var doc projectDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode project document")
	}

	images := make([]entity.AssetRef, 0, len(doc.Images))
	for _, url := range doc.Images {
		images = append(images, entity.StoredAsset(url))
	}

	plans := make(map[entity.FloorType]entity.AssetRef, len(doc.Plans))
	for floorType, url := range doc.Plans {
		plans[entity.FloorType(floorType)] = entity.StoredAsset(url)
	}

	floors := make([]entity.Floor, 0, len(doc.Floors))
	for _, f := range doc.Floors {
		rooms := make([]entity.Room, 0, len(f.Rooms))
		for _, r := range f.Rooms {
			rooms = append(rooms, entity.Room{RoomType: entity.RoomType(r.RoomType), MP: r.MP})
		}
		floors = append(floors, entity.Floor{Type: entity.FloorType(f.Type), Rooms: rooms})
	}

	return &entity.Project{
		ID:        doc.ID,
		DocID:     snap.Ref.ID,
		Name:      doc.Name,
		Category:  entity.Category(doc.Category),
		Price:     doc.Price,
		TotalMP:   doc.TotalMP,
		UsableMP:  doc.UsableMP,
		Images:    images,
		Floors:    floors,
		Plans:     plans,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		CreatedBy: doc.CreatedBy,
	}, nil
}
