package testdata

const data = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 0
PreviewTime: 31000
Countdown: 0
SampleSet: Soft
StackLeniency: 0.7
Mode: 0

[Editor]
DistanceSpacing: 1.2
BeatDivisor: 4
GridSize: 8

[Metadata]
Title:Windowed
TitleUnicode:Windowed
Artist:Chunk Band
ArtistUnicode:Chunk Band
Creator:mapper
Version:Insane
Source:
Tags:test
BeatmapID:1
BeatmapSetID:1

[Difficulty]
HPDrainRate:5
CircleSize:4
OverallDifficulty:8
ApproachRate:9
SliderMultiplier:1.8
SliderTickRate:1

[Events]
0,0,"bg.jpg",0,0

[TimingPoints]
1000,333.333333333333,4,2,0,60,1,0
31000,-100,4,2,0,60,0,1

[HitObjects]
256,192,1000,1,0,0:0:0:0:
100,100,4000,2,0,B|200:100,1,100
300,200,31000,1,2,0:0:0:0:
256,192,36000,12,0,38000,0:0:0:0:
`
