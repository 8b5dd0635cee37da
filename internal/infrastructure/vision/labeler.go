package vision

import (
	"context"
	"errors"
	"fmt"

	visionapi "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/kurochkinivan/food_classifier/internal/domain"
	"google.golang.org/api/option"
)

type annotator interface {
	BatchAnnotateImages(
		ctx context.Context,
		req *visionpb.BatchAnnotateImagesRequest,
		opts ...gax.CallOption,
	) (*visionpb.BatchAnnotateImagesResponse, error)
}

// Labeler runs label detection on images addressed by URI.
type Labeler struct {
	client annotator
	close  func() error
}

// New connects to the annotation API. A non-empty projectID is billed for
// quota instead of the credentials' own project.
func New(ctx context.Context, projectID, credentialsJSON string) (*Labeler, error) {
	var opts []option.ClientOption
	if projectID != "" {
		opts = append(opts, option.WithQuotaProject(projectID))
	}
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := visionapi.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create image annotator client: %w", err)
	}

	return &Labeler{client: client, close: client.Close}, nil
}

func (l *Labeler) Close() error {
	if l.close == nil {
		return nil
	}
	return l.close()
}

func (l *Labeler) DetectLabels(ctx context.Context, imageURI string) ([]domain.RawLabel, error) {
	resp, err := l.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{
				Source: &visionpb.ImageSource{ImageUri: imageURI},
			},
			Features: []*visionpb.Feature{{
				Type: visionpb.Feature_LABEL_DETECTION,
			}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to annotate image: %w", err)
	}

	responses := resp.GetResponses()
	if len(responses) == 0 {
		return nil, errors.New("empty annotation response")
	}

	if status := responses[0].GetError(); status != nil {
		return nil, fmt.Errorf("label detection failed: %s", status.GetMessage())
	}

	annotations := responses[0].GetLabelAnnotations()
	labels := make([]domain.RawLabel, 0, len(annotations))
	for _, a := range annotations {
		labels = append(labels, domain.RawLabel{
			Description: a.GetDescription(),
			Score:       float64(a.GetScore()),
		})
	}

	return labels, nil
}
