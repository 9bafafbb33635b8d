package itinerary

import (
	"sort"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

// TemplateSummary is the catalog listing entry exposed by the API.
type TemplateSummary struct {
	ID           string              `json:"id"`
	TemplateCode string              `json:"template_code"`
	Title        string              `json:"title"`
	DurationDays int                 `json:"duration_days"`
	Tags         []string            `json:"tags"`
	Mode         types.ItineraryMode `json:"mode"`
}

// templateCatalog holds the pre-validated itinerary documents an operator
// can start from instead of generating one. Entries are returned to callers
// only as deep copies; the catalog itself is never mutated.
var templateCatalog = map[string]types.ItineraryData{
	"winter-6d": {
		TemplateCode:   "XJ-ALTAY-6D5N-DEPTH-001",
		Title:          "冬季阿勒泰深度游·6天5晚｜纯玩小团·S21沙漠高速·住进禾木",
		Mode:           types.ModeDomestic,
		RouteOverview:  "乌鲁木齐 → S21沙漠高速 → 乌伦古湖 → 喀纳斯 → 禾木 → 魔鬼城 → 奎屯 → 乌鲁木齐",
		Tags:           []string{"纯玩小团", "不走回头路", "深度游"},
		DurationDays:   6,
		DurationNights: 5,
		Defaults: types.ItineraryDefaults{
			Transport:      "7座商务车/14座2+1（按人数匹配）",
			TargetAudience: "时间有限但想深度游玩的旅客",
		},
		Itinerary: []types.DaySchedule{
			{
				DayNo:      1,
				Title:      "乌鲁木齐接机 - 入住酒店",
				Highlights: []string{"接机", "自由活动"},
				Segments:   []types.Segment{{Type: types.SegmentTransfer, Description: "24小时免费接送机 → 入住酒店 → 自由活动"}},
				Stay:       "乌鲁木齐（精选舒适/豪华酒店）",
				Meals:      types.Meals{Breakfast: "自理", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"推荐前往国际大巴扎体验异域风情"},
			},
			{
				DayNo:      2,
				Title:      "穿越S21沙漠高速 - 乌伦古湖",
				Highlights: []string{"S21沙漠公路", "乌伦古湖"},
				Segments:   []types.Segment{{Type: types.SegmentSight, Description: "穿越S21沙漠高速（不走回头路） → 游览乌伦古湖（海上魔鬼城）"}},
				Stay:       "布尔津/福海（当地精选酒店）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"沙漠公路风光壮丽，适合拍摄公路大片"},
			},
			{
				DayNo:      3,
				Title:      "喀纳斯神仙湾 - 月亮湾 - 卧龙湾",
				Highlights: []string{"喀纳斯三湾", "雪景"},
				Segments:   []types.Segment{{Type: types.SegmentSight, Description: "前往喀纳斯景区 → 游览三湾（神仙湾/月亮湾/卧龙湾）"}},
				Stay:       "喀纳斯景区/贾登峪（精选酒店）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"冬季喀纳斯宛如水墨画，注意保暖"},
			},
			{
				DayNo:      4,
				Title:      "禾木玩雪 - 坐马拉爬犁 - 看璀璨星空",
				Highlights: []string{"禾木玩雪", "马拉爬犁", "星空"},
				Segments:   []types.Segment{{Type: types.SegmentExperience, Description: "前往禾木 → 体验马拉爬犁（可选） → 玩雪 → 夜观星空"}},
				Stay:       "禾木景区内（精选木屋/酒店）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"住在景区内，方便第二天看晨雾"},
			},
			{
				DayNo:      5,
				Title:      "魔鬼城 - 奎屯",
				Highlights: []string{"世界魔鬼城", "雅丹地貌"},
				Segments:   []types.Segment{{Type: types.SegmentSight, Description: "前往乌尔禾世界魔鬼城 → 观赏雅丹地貌 → 前往奎屯"}},
				Stay:       "奎屯（精选舒适/豪华酒店）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"魔鬼城日落非常出片"},
			},
			{
				DayNo:      6,
				Title:      "乌鲁木齐送机",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentTransfer, Description: "返回乌鲁木齐 → 根据航班时间送机"}},
				Stay:       "温馨的家",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"结束愉快的阿勒泰之旅"},
			},
		},
		Includes: []string{
			"门票：喀纳斯、禾木、魔鬼城一票全含",
			"交通：全程正规旅游车（S21不走回头路）",
			"住宿：5晚精选舒适/豪华酒店（含禾木景区住宿）",
			"接送：24小时免费接送机",
		},
		Excludes: []string{
			"用餐：正餐自理（司机可推荐美食）",
			"大交通：往返新疆机票",
			"娱乐：马拉爬犁、雪地摩托等个人消费",
		},
		Notes: []string{
			"冬季路况/天气影响较大，行程会在不降低体验的前提下灵活微调",
			"喀纳斯/禾木早晚更冷：手套、帽子、雪地靴、暖宝宝强烈建议",
			"行程顺序可能会根据天气/路况进行调整",
		},
		Signature: "",
	},
	"winter-9d": {
		TemplateCode:   "XJ-WINTER-9D8N-001",
		Title:          "冬恋喀禾·9天8晚｜粉雪阿勒泰·喀纳斯禾木·赛里木湖蓝冰",
		Mode:           types.ModeDomestic,
		RouteOverview:  "乌鲁木齐 → S21沙漠公路 → 乌伦古湖 → 布尔津 → 喀纳斯三湾 → 禾木 → 吉克普林滑雪 → 魔鬼城 → 赛里木湖蓝冰环湖 → 乌鲁木齐",
		Tags:           []string{"亲子", "情侣", "摄影", "冬季松弛感"},
		DurationDays:   9,
		DurationNights: 8,
		Defaults: types.ItineraryDefaults{
			Transport:      "7座商务车/14座2+1（按人数匹配）+ 资深司机",
			TargetAudience: "亲子/情侣/闺蜜/摄影/小团私定（冬季松弛感拉满）",
		},
		Itinerary: []types.DaySchedule{
			{
				DayNo:      1,
				Title:      "全国各地 → 乌鲁木齐：落地新疆，先把松弛感拉满",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentTransfer, Description: "接机/接站 → 入住酒店 → 自由活动（推荐：国际大巴扎/夜市）"}},
				Stay:       "乌鲁木齐（参考：{乌市酒店} 或同级）",
				Meals:      types.Meals{Breakfast: "自理", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"晚到也不赶行程，当天以休整为主"},
			},
			{
				DayNo:      2,
				Title:      "乌鲁木齐 → S21沙漠公路 → 乌伦古湖 → 布尔津",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentSight, Description: "S21沙漠高速（冬季风光）→ 乌伦古湖观景 → 抵达布尔津"}},
				Stay:       "布尔津（参考：{布尔津酒店} 或同级）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"今日路程偏长，但一路景色很有“荒野电影感”"},
			},
			{
				DayNo:      3,
				Title:      "布尔津 → 喀纳斯三湾：神仙湾·月亮湾·卧龙湾（秋冬都很绝）",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentSight, Description: "前往喀纳斯 → 三湾栈道轻徒步 → 观景打卡"}},
				Stay:       "喀纳斯（亮点：{喀纳斯大窗观景房/木屋同级}）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"冬季早晚温差大，拍照建议备暖宝宝/手套"},
			},
			{
				DayNo:      4,
				Title:      "喀纳斯 → 禾木：入住童话雪村 + 吉克普林滑雪（可选强度）",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentExperience, Description: "喀纳斯 → 禾木 → 吉克普林滑雪/玩雪（初学友好，可请教练）"}},
				Stay:       "禾木（亮点：{禾木小木屋大窗户户型/同级}）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"滑雪是可选模块，不滑雪也能在禾木慢慢拍、慢慢玩"},
			},
			{
				DayNo:      5,
				Title:      "禾木：日出晨雾 + 自由活动（最治愈的一天）",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentFree, Description: "禾木观景台日出 → 村落漫步 → 咖啡/围炉/雪地拍照 → 下午前往布尔津"}},
				Stay:       "布尔津（参考：{布尔津酒店} 或同级）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"这天安排“留白”，体验感会明显更高级"},
			},
			{
				DayNo:      6,
				Title:      "布尔津 → 乌尔禾世界魔鬼城 → 奎屯",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentSight, Description: "前往乌尔禾 → 魔鬼城（日落非常出片）→ 奎屯"}},
				Stay:       "奎屯（参考：{奎屯酒店} 或同级）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"魔鬼城风大，帽子围巾要带好"},
			},
			{
				DayNo:      7,
				Title:      "奎屯 → 赛里木湖：限定蓝冰 + 环湖自驾",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentSight, Description: "前往赛里木湖 → 蓝冰/冰泡/冰裂纹打卡 → 环湖自驾（按路况）"}},
				Stay:       "赛湖景区门口/清水河（参考：{赛湖酒店} 或同级）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"赛湖体感更冷，建议羽绒+雪地靴"},
			},
			{
				DayNo:      8,
				Title:      "赛里木湖 →（可选独山子大峡谷）→ 乌鲁木齐",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentTransfer, Description: "赛湖出发 → 可选独山子大峡谷（按季节开放与路况）→ 返回乌鲁木齐"}},
				Stay:       "乌鲁木齐（参考：{乌市酒店} 或同级）",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{"这天为回程缓冲日，避免赶飞机太累"},
			},
			{
				DayNo:      9,
				Title:      "乌鲁木齐 → 送机/送站：带着新疆的雪景回家",
				Highlights: []string{},
				Segments:   []types.Segment{{Type: types.SegmentTransfer, Description: "根据航班/车次时间送机/送站"}},
				Stay:       "温馨的家",
				Meals:      types.Meals{Breakfast: "含", Lunch: "自理", Dinner: "自理"},
				Tips:       []string{},
			},
		},
		Includes: []string{
			"用车：全程商务车/旅游车（按人数匹配）+ 油费/过路费/停车费",
			"接送：乌鲁木齐接送机/站",
			"门票：{禾木/喀纳斯/赛里木湖/魔鬼城（按你实际包含勾选）}",
			"赠送：{滑雪票4小时初级（按你的实际产品）}",
			"保险：旅游意外险（可选/含）",
		},
		Excludes: []string{
			"酒店住宿费用（可代订/可按档位打包）",
			"用餐（除行程标注含早）",
			"景区内娱乐项目：雪地摩托/马拉雪橇/表演/教练等",
			"个人消费及不可抗力产生的额外费用",
		},
		Notes: []string{
			"冬季路况/天气影响较大，行程会在不降低体验的前提下灵活微调",
			"喀纳斯/禾木早晚更冷：手套、帽子、雪地靴、暖宝宝强烈建议",
			"滑雪/冰面活动请务必遵守安全提示（可协助安排教练）",
		},
		Signature: "",
	},
}

// ListTemplateSummaries returns the catalog listing, sorted by id for a
// stable API response.
func ListTemplateSummaries() []TemplateSummary {
	out := make([]TemplateSummary, 0, len(templateCatalog))
	for id, tpl := range templateCatalog {
		out = append(out, TemplateSummary{
			ID:           id,
			TemplateCode: tpl.TemplateCode,
			Title:        tpl.Title,
			DurationDays: tpl.DurationDays,
			Tags:         append([]string(nil), tpl.Tags...),
			Mode:         tpl.Mode,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// templateByID returns a deep copy of a catalog entry.
func templateByID(id string) (types.ItineraryData, bool) {
	tpl, ok := templateCatalog[id]
	if !ok {
		return types.ItineraryData{}, false
	}
	return tpl.Clone(), true
}
