package youtube

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/autoreel/autoreel/internal/types"
)

const watchURL = "https://www.youtube.com/watch?v="

// Adapter uploads videos through the YouTube Data API v3 using an OAuth2
// refresh token, the headless variant of the installed-app flow.
type Adapter struct {
	clientID     string
	clientSecret string
	refreshToken string
}

func New(clientID, clientSecret, refreshToken string) *Adapter {
	return &Adapter{
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
	}
}

func (a *Adapter) Upload(ctx context.Context, videoPath string, meta types.UploadMetadata) (types.UploadResult, error) {
	if a.clientID == "" || a.clientSecret == "" || a.refreshToken == "" {
		return types.UploadResult{}, fmt.Errorf("youtube oauth client: %w", types.ErrCredentialMissing)
	}

	f, err := os.Open(videoPath)
	if err != nil {
		if os.IsNotExist(err) {
			return types.UploadResult{}, fmt.Errorf("video file %s: %w", videoPath, types.ErrNotFound)
		}
		return types.UploadResult{}, fmt.Errorf("open video file: %w", err)
	}
	defer f.Close()

	conf := &oauth2.Config{
		ClientID:     a.clientID,
		ClientSecret: a.clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{yt.YoutubeUploadScope},
	}
	token := &oauth2.Token{
		RefreshToken: a.refreshToken,
		Expiry:       time.Now().Add(-time.Hour), // force refresh
	}
	client := oauth2.NewClient(ctx, conf.TokenSource(ctx, token))

	svc, err := yt.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return types.UploadResult{}, fmt.Errorf("youtube service: %w", err)
	}

	video := &yt.Video{
		Snippet: &yt.VideoSnippet{
			Title:       meta.Title,
			Description: meta.Description,
			Tags:        meta.Tags,
			CategoryId:  meta.CategoryID,
		},
		Status: &yt.VideoStatus{
			PrivacyStatus:           meta.Privacy,
			SelfDeclaredMadeForKids: false,
		},
	}

	call := svc.Videos.Insert([]string{"snippet", "status"}, video)
	call.Media(f)

	uploaded, err := call.Do()
	if err != nil {
		return types.UploadResult{}, fmt.Errorf("youtube upload: %w", err)
	}
	if uploaded.Id == "" {
		return types.UploadResult{}, errors.New("youtube upload: no video id returned")
	}

	return types.UploadResult{
		VideoID: uploaded.Id,
		URL:     watchURL + uploaded.Id,
	}, nil
}
