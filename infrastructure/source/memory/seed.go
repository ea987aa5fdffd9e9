// ABOUTME: Default catalog served by the in-memory video source
// ABOUTME: Eight sample videos with their authors plus the viewer profile

package memory

import "reels-app-api/core/domain"

const sampleBucket = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/"

// Seed is the initial content of a Store
type Seed struct {
	Videos  []domain.VideoItem
	Profile domain.UserProfile
}

// DefaultSeed returns a fresh copy of the sample catalog
func DefaultSeed() Seed {
	return Seed{
		Videos: []domain.VideoItem{
			{
				ID:                "1",
				MediaURL:          sampleBucket + "BigBuckBunny.mp4",
				AuthorID:          "gabbar_singh",
				AuthorName:        "Gabbar Singh",
				AuthorImage:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
				Title:             "DEATH",
				Description:       "terrifying search for a murderer whodunit/lyric honeymooners tragically cut...",
				Hashtags:          []string{"#StartupIndia"},
				LikeCount:         200000,
				CommentCount:      13000,
				ShareCount:        456,
				Earnings:          2100,
				IsPaid:            true,
				DurationSeconds:   45,
				IsFollowingAuthor: false,
			},
			{
				ID:                "2",
				MediaURL:          sampleBucket + "ElephantsDream.mp4",
				AuthorID:          "rahul_gupta",
				AuthorName:        "Rahul Gupta",
				AuthorImage:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
				Title:             "Tech Innovation in India",
				Description:       "Exploring the latest tech innovations coming out of India's startup ecosystem #TechIndia #Innovation",
				Hashtags:          []string{"#TechIndia", "#Innovation", "#Startup"},
				LikeCount:         189000,
				CommentCount:      923,
				ShareCount:        445,
				Earnings:          2100,
				DurationSeconds:   62,
				IsFollowingAuthor: true,
			},
			{
				ID:              "3",
				MediaURL:        sampleBucket + "ForBiggerBlazes.mp4",
				AuthorID:        "anita_patel",
				AuthorName:      "Anita Patel",
				AuthorImage:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
				Title:           "Fintech Revolution",
				Description:     "How fintech startups are changing the game in India. From UPI to digital lending #Fintech #DigitalIndia",
				Hashtags:        []string{"#Fintech", "#DigitalIndia", "#UPI"},
				LikeCount:       342000,
				CommentCount:    2156,
				ShareCount:      1023,
				Earnings:        4500,
				IsPaid:          true,
				DurationSeconds: 38,
			},
			{
				ID:                "4",
				MediaURL:          sampleBucket + "ForBiggerEscapes.mp4",
				AuthorID:          "vikram_singh",
				AuthorName:        "Vikram Singh",
				AuthorImage:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
				Title:             "AI & Machine Learning",
				Description:       "The future of AI in Indian startups. Watch how ML is transforming businesses #AI #MachineLearning #FutureOfWork",
				Hashtags:          []string{"#AI", "#MachineLearning", "#FutureOfWork"},
				LikeCount:         198000,
				CommentCount:      1356,
				ShareCount:        678,
				Earnings:          2800,
				DurationSeconds:   55,
				IsFollowingAuthor: true,
			},
			{
				ID:              "5",
				MediaURL:        sampleBucket + "ForBiggerFun.mp4",
				AuthorID:        "sneha_agarwal",
				AuthorName:      "Sneha Agarwal",
				AuthorImage:     "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=face",
				Title:           "E-commerce Success Story",
				Description:     "From garage to unicorn: The incredible journey of an Indian e-commerce startup #Ecommerce #Success #Unicorn",
				Hashtags:        []string{"#Ecommerce", "#Success", "#Unicorn"},
				LikeCount:       425000,
				CommentCount:    3247,
				ShareCount:      1589,
				Earnings:        6100,
				IsPaid:          true,
				DurationSeconds: 72,
			},
			{
				ID:                "6",
				MediaURL:          sampleBucket + "ForBiggerJoyrides.mp4",
				AuthorID:          "karan_mehta",
				AuthorName:        "Karan Mehta",
				AuthorImage:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
				Title:             "EdTech Revolution",
				Description:       "How EdTech is transforming education in India. From rural areas to urban centers #EdTech #Education #DigitalLearning",
				Hashtags:          []string{"#EdTech", "#Education", "#DigitalLearning"},
				LikeCount:         167000,
				CommentCount:      892,
				ShareCount:        334,
				Earnings:          1900,
				DurationSeconds:   41,
				IsFollowingAuthor: true,
			},
			{
				ID:              "7",
				MediaURL:        sampleBucket + "ForBiggerMeltdowns.mp4",
				AuthorID:        "meera_joshi",
				AuthorName:      "Dr. Meera Joshi",
				AuthorImage:     "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
				Title:           "HealthTech Innovation",
				Description:     "Revolutionary healthcare technology making healthcare accessible to all. Telemedicine and beyond #HealthTech #Healthcare",
				Hashtags:        []string{"#HealthTech", "#Healthcare", "#Telemedicine"},
				LikeCount:       234000,
				CommentCount:    1678,
				ShareCount:      756,
				Earnings:        3400,
				IsPaid:          true,
				DurationSeconds: 58,
			},
			{
				ID:                "8",
				MediaURL:          sampleBucket + "Sintel.mp4",
				AuthorID:          "arjun_reddy",
				AuthorName:        "Arjun Reddy",
				AuthorImage:       "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=150&h=150&fit=crop&crop=face",
				Title:             "Sustainable Startups",
				Description:       "Green technology and sustainable business models leading the change in India #Sustainability #GreenTech #ClimateChange",
				Hashtags:          []string{"#Sustainability", "#GreenTech", "#ClimateChange"},
				LikeCount:         145000,
				CommentCount:      743,
				ShareCount:        289,
				Earnings:          1650,
				DurationSeconds:   48,
				IsFollowingAuthor: true,
			},
		},
		Profile: domain.UserProfile{
			ID:        "user_1",
			Name:      "Siddharth",
			Username:  "@siddharth_dev",
			Image:     "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=face",
			Followers: 12500,
			Following: 234,
			Likes:     1200000,
			Bio:       "Tech enthusiast | Startup founder | Love creating amazing experiences",
			Verified:  true,
		},
	}
}
