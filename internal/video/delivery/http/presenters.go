package http

import (
	"strategy-shop/internal/video"
	"strategy-shop/pkg/relevance"
)

type searchReq struct {
	Query     string `json:"query"      binding:"required,max=200"`
	UserQuery string `json:"user_query" binding:"max=2000"`
}

func (r searchReq) validate() error { return nil }

func (r searchReq) toInput() video.SearchInput {
	return video.SearchInput{Query: r.Query, UserQuery: r.UserQuery}
}

type videoResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
}

type searchResp struct {
	Videos []videoResp `json:"videos"`
}

// newVideoResps keeps the field names the web client already reads.
func newVideoResps(in []relevance.Candidate) []videoResp {
	out := make([]videoResp, len(in))
	for i, v := range in {
		out[i] = videoResp{
			ID:           v.ID,
			Title:        v.Title,
			Thumbnail:    v.ThumbnailURL,
			ChannelTitle: v.ChannelName,
		}
	}
	return out
}

func (h *handler) newSearchResp(out video.SearchOutput) searchResp {
	return searchResp{Videos: newVideoResps(out.Videos)}
}
